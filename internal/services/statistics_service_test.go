package services_test

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsService(t *testing.T) {
	// 1. Подготовка
	env := newTestEnv(t)
	helpers.CreateUser(t, env.db, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	rita := helpers.CreateUser(t, env.db, "Rita", "rita@example.com", "password123", models.UserRoleRecruiter)
	carl := helpers.CreateUser(t, env.db, "Carl", "carl@example.com", "password123", models.UserRoleCandidate)
	helpers.CreateUser(t, env.db, "Cleo", "cleo@example.com", "password123", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, env.db, "IT")
	dev := helpers.CreateAnnonce(t, env.db, rita.ID, category.ID, "Dev")
	helpers.CreateAnnonce(t, env.db, rita.ID, category.ID, "Ops")
	helpers.CreateCandidature(t, env.db, carl.ID, dev.ID)

	// 2. Действие
	recruiter, err := env.svc.StatisticsService.RecruiterStats(env.db, rita.ID)
	require.NoError(t, err)
	global, err := env.svc.StatisticsService.GlobalStats(env.db)
	require.NoError(t, err)

	// 3. Проверка
	assert.Equal(t, int64(2), recruiter.AnnonceCount)
	assert.Equal(t, map[string]int64{"En attente": 1, "Accepte": 0, "Refuse": 0}, recruiter.CandidatureStats)
	assert.Equal(t, map[string]int64{"Dev": 1}, recruiter.CandidaturesByAnnonce)

	assert.Equal(t, int64(4), global.TotalUsers)
	var sum int64
	for _, n := range global.UsersByRole {
		sum += n
	}
	assert.Equal(t, global.TotalUsers, sum)
	assert.Equal(t, int64(2), global.UsersByRole["Candidat"])
	assert.Equal(t, int64(2), global.AnnonceCount)
	assert.Equal(t, int64(1), global.CandidatureCount)
	require.Len(t, global.TopRecruteurs, 1)
	assert.Equal(t, rita.ID, global.TopRecruteurs[0].ID)
}

func TestStatisticsService_EmptyRecruiter(t *testing.T) {
	env := newTestEnv(t)
	rita := helpers.CreateUser(t, env.db, "Rita", "rita@example.com", "password123", models.UserRoleRecruiter)

	stats, err := env.svc.StatisticsService.RecruiterStats(env.db, rita.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.AnnonceCount)
	assert.Len(t, stats.CandidatureStats, 3, "все статусы присутствуют с нулями")
	assert.NotNil(t, stats.CandidaturesByAnnonce)
}
