package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryAdministration(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	adminToken, _ := ts.CreateAdmin(t, "admin@example.com")
	recruiterToken, _ := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)

	// 2. Действие и проверка
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/categories", recruiterToken, map[string]string{"name": "IT"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/categories", adminToken, map[string]string{"name": "IT"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	helpers.Decode(t, body, &category)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/categories", adminToken, map[string]string{"name": "IT"})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/categories/"+category.ID, adminToken, map[string]string{"name": "IT"})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var categories []struct {
		Name string `json:"name"`
	}
	helpers.Decode(t, body, &categories)
	require.Len(t, categories, 1)

	publishAnnonce(t, ts, recruiterToken, category.ID, "Dev")
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/categories/"+category.ID, adminToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "категория с вакансиями не удаляется")
}

func TestGlobalStatistics(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	adminToken, _ := ts.CreateAdmin(t, "admin@example.com")
	ritaToken, ritaID := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	ottoToken, _ := ts.Register(t, "Otto", "otto@example.com", models.UserRoleRecruiter)
	carlToken, _ := ts.Register(t, "Carl", "carl@example.com", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, ts.DB, "IT")

	dev := publishAnnonce(t, ts, ritaToken, category.ID, "Dev")
	publishAnnonce(t, ts, ritaToken, category.ID, "Ops")
	publishAnnonce(t, ts, ottoToken, category.ID, "QA")
	applyTo(t, ts, carlToken, dev.ID)

	// 2. Действие
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/stats/global", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// 3. Проверка
	var stats struct {
		UsersByRole   map[string]int64 `json:"users_by_role"`
		TotalUsers    int64            `json:"total_users"`
		AnnonceCount  int64            `json:"annonce_count"`
		TopRecruteurs []struct {
			ID            string `json:"id"`
			AnnoncesCount int64  `json:"annonces_count"`
		} `json:"top_recruteurs"`
	}
	helpers.Decode(t, body, &stats)

	var sum int64
	for _, n := range stats.UsersByRole {
		sum += n
	}
	assert.Equal(t, stats.TotalUsers, sum)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.AnnonceCount)
	require.NotEmpty(t, stats.TopRecruteurs)
	assert.Equal(t, ritaID, stats.TopRecruteurs[0].ID)
	assert.Equal(t, int64(2), stats.TopRecruteurs[0].AnnoncesCount)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/stats/recruteur", ritaToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mine struct {
		AnnonceCount     int64            `json:"annonce_count"`
		CandidatureStats map[string]int64 `json:"candidature_stats"`
	}
	helpers.Decode(t, body, &mine)
	assert.Equal(t, int64(2), mine.AnnonceCount)
	assert.Equal(t, int64(1), mine.CandidatureStats["En attente"])

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/stats/global", ritaToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminDeletesUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, admin := ts.CreateAdmin(t, "admin@example.com")
	ritaToken, ritaID := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	category := helpers.CreateCategory(t, ts.DB, "IT")
	annonce := publishAnnonce(t, ts, ritaToken, category.ID, "Dev")

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/users/"+admin.ID, adminToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/users/"+ritaID, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/annonces/"+annonce.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "вакансии удаляются вместе с рекрутером")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/user", ritaToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
