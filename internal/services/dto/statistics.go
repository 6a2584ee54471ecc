package dto

// RecruiterStats - статистика рекрутера
type RecruiterStats struct {
	AnnonceCount          int64            `json:"annonce_count"`
	CandidatureStats      map[string]int64 `json:"candidature_stats"`
	CandidaturesByAnnonce map[string]int64 `json:"candidatures_by_annonce"`
}

// RecruiterRank - строка рейтинга рекрутеров
type RecruiterRank struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AnnoncesCount int64  `json:"annonces_count"`
}

// GlobalStats - статистика платформы для администратора
type GlobalStats struct {
	UsersByRole          map[string]int64 `json:"users_by_role"`
	TotalUsers           int64            `json:"total_users"`
	AnnonceCount         int64            `json:"annonce_count"`
	CandidatureCount     int64            `json:"candidature_count"`
	CandidaturesByStatut map[string]int64 `json:"candidatures_by_statut"`
	TopRecruteurs        []RecruiterRank  `json:"top_recruteurs"`
}
