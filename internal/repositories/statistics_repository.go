package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// GroupCount - строка агрегата "ключ -> количество"
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:total"`
}

// RecruiterRank - рекрутер и число его вакансий
type RecruiterRank struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AnnoncesCount int64  `json:"annonces_count"`
}

// StatisticsRepository - агрегирующие запросы без кэширования
type StatisticsRepository interface {
	CountAnnonces(db *gorm.DB, recruteurID string) (int64, error)
	CountCandidatures(db *gorm.DB) (int64, error)
	CountUsers(db *gorm.DB) (int64, error)
	CandidaturesByStatus(db *gorm.DB, recruteurID string) ([]GroupCount, error)
	CandidaturesByAnnonceTitle(db *gorm.DB, recruteurID string) ([]GroupCount, error)
	UsersByRole(db *gorm.DB) ([]GroupCount, error)
	TopRecruiters(db *gorm.DB, limit int) ([]RecruiterRank, error)
}

type StatisticsRepositoryImpl struct{}

func NewStatisticsRepository() StatisticsRepository {
	return &StatisticsRepositoryImpl{}
}

// CountAnnonces - число вакансий; пустой recruteurID означает все вакансии
func (r *StatisticsRepositoryImpl) CountAnnonces(db *gorm.DB, recruteurID string) (int64, error) {
	var count int64
	query := db.Model(&models.Annonce{})
	if recruteurID != "" {
		query = query.Where("recruteur_id = ?", recruteurID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *StatisticsRepositoryImpl) CountCandidatures(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Candidature{}).Count(&count).Error
	return count, err
}

func (r *StatisticsRepositoryImpl) CountUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CandidaturesByStatus - кандидатуры по статусу; с recruteurID только по его вакансиям
func (r *StatisticsRepositoryImpl) CandidaturesByStatus(db *gorm.DB, recruteurID string) ([]GroupCount, error) {
	var rows []GroupCount
	query := db.Model(&models.Candidature{}).
		Select("candidatures.statut AS group_key, COUNT(*) AS total")
	if recruteurID != "" {
		query = query.Joins("JOIN annonces ON annonces.id = candidatures.annonce_id").
			Where("annonces.recruteur_id = ?", recruteurID)
	}
	err := query.Group("candidatures.statut").Order("candidatures.statut").Scan(&rows).Error
	return rows, err
}

func (r *StatisticsRepositoryImpl) CandidaturesByAnnonceTitle(db *gorm.DB, recruteurID string) ([]GroupCount, error) {
	var rows []GroupCount
	err := db.Model(&models.Candidature{}).
		Select("annonces.title AS group_key, COUNT(*) AS total").
		Joins("JOIN annonces ON annonces.id = candidatures.annonce_id").
		Where("annonces.recruteur_id = ?", recruteurID).
		Group("annonces.title").
		Order("annonces.title").
		Scan(&rows).Error
	return rows, err
}

func (r *StatisticsRepositoryImpl) UsersByRole(db *gorm.DB) ([]GroupCount, error) {
	var rows []GroupCount
	err := db.Model(&models.User{}).
		Select("role AS group_key, COUNT(*) AS total").
		Group("role").
		Order("role").
		Scan(&rows).Error
	return rows, err
}

// TopRecruiters - рекрутеры по числу вакансий (desc), при равенстве по id (asc)
func (r *StatisticsRepositoryImpl) TopRecruiters(db *gorm.DB, limit int) ([]RecruiterRank, error) {
	var rows []RecruiterRank
	err := db.Model(&models.User{}).
		Select("users.id AS id, users.name AS name, COUNT(annonces.id) AS annonces_count").
		Joins("LEFT JOIN annonces ON annonces.recruteur_id = users.id").
		Where("users.role = ?", models.UserRoleRecruiter).
		Group("users.id, users.name").
		Order("annonces_count DESC").
		Order("users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
