package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const topRecruitersLimit = 5

type StatisticsService interface {
	RecruiterStats(db *gorm.DB, recruteurID string) (*dto.RecruiterStats, error)
	GlobalStats(db *gorm.DB) (*dto.GlobalStats, error)
}

type StatisticsServiceImpl struct {
	statsRepo repositories.StatisticsRepository
}

func NewStatisticsService(statsRepo repositories.StatisticsRepository) StatisticsService {
	return &StatisticsServiceImpl{statsRepo: statsRepo}
}

func (s *StatisticsServiceImpl) RecruiterStats(db *gorm.DB, recruteurID string) (*dto.RecruiterStats, error) {
	annonces, err := s.statsRepo.CountAnnonces(db, recruteurID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byStatus, err := s.statsRepo.CandidaturesByStatus(db, recruteurID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byTitle, err := s.statsRepo.CandidaturesByAnnonceTitle(db, recruteurID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RecruiterStats{
		AnnonceCount:          annonces,
		CandidatureStats:      statusCounts(byStatus),
		CandidaturesByAnnonce: groupCounts(byTitle, nil),
	}, nil
}

func (s *StatisticsServiceImpl) GlobalStats(db *gorm.DB) (*dto.GlobalStats, error) {
	stats := &dto.GlobalStats{}

	byRole, err := s.statsRepo.UsersByRole(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	roles := make([]string, 0, len(models.UserRoles))
	for _, role := range models.UserRoles {
		roles = append(roles, string(role))
	}
	stats.UsersByRole = groupCounts(byRole, roles)

	if stats.TotalUsers, err = s.statsRepo.CountUsers(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.AnnonceCount, err = s.statsRepo.CountAnnonces(db, ""); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.CandidatureCount, err = s.statsRepo.CountCandidatures(db); err != nil {
		return nil, apperrors.InternalError(err)
	}

	byStatus, err := s.statsRepo.CandidaturesByStatus(db, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.CandidaturesByStatut = statusCounts(byStatus)

	top, err := s.statsRepo.TopRecruiters(db, topRecruitersLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.TopRecruteurs = make([]dto.RecruiterRank, 0, len(top))
	for _, r := range top {
		stats.TopRecruteurs = append(stats.TopRecruteurs, dto.RecruiterRank{
			ID:            r.ID,
			Name:          r.Name,
			AnnoncesCount: r.AnnoncesCount,
		})
	}

	return stats, nil
}

func statusCounts(rows []repositories.GroupCount) map[string]int64 {
	keys := make([]string, 0, len(models.CandidatureStatuses))
	for _, status := range models.CandidatureStatuses {
		keys = append(keys, string(status))
	}
	return groupCounts(rows, keys)
}

// groupCounts переводит строки агрегата в map; ключи из zeros присутствуют всегда
func groupCounts(rows []repositories.GroupCount, zeros []string) map[string]int64 {
	out := make(map[string]int64, len(rows)+len(zeros))
	for _, key := range zeros {
		out[key] = 0
	}
	for _, row := range rows {
		out[row.Key] += row.Count
	}
	return out
}
