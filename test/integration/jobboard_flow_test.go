package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type annonceJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	CategorieID string  `json:"categorie_id"`
	RecruteurID string  `json:"recruteur_id"`
	Thumbnail   *string `json:"thumbnail"`
	Categorie   *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"categorie"`
}

type annonceListJSON struct {
	Annonces []annonceJSON `json:"annonces"`
	Total    int64         `json:"total"`
}

type candidatureJSON struct {
	ID         string  `json:"id"`
	Objet      string  `json:"objet"`
	Statut     string  `json:"statut"`
	AnnonceID  string  `json:"annonce_id"`
	CandidatID string  `json:"candidat_id"`
	Document   *string `json:"document"`
}

type candidatureListJSON struct {
	Candidatures []candidatureJSON `json:"candidatures"`
	Total        int               `json:"total"`
}

// publishAnnonce публикует вакансию через API и возвращает ее
func publishAnnonce(t *testing.T, ts *helpers.TestServer, token, categoryID, title string) annonceJSON {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/annonces", token, map[string]string{
		"title":        title,
		"description":  "Description de " + title,
		"categorie_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание вакансии. Ответ: %s", body)

	var annonce annonceJSON
	helpers.Decode(t, body, &annonce)
	return annonce
}

func applyTo(t *testing.T, ts *helpers.TestServer, token, annonceID string) candidatureJSON {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/candidatures", token, map[string]string{
		"objet":      "Candidature",
		"lettre":     "Madame, Monsieur",
		"annonce_id": annonceID,
		"statut":     "Accepte",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Подача кандидатуры. Ответ: %s", body)

	var candidature candidatureJSON
	helpers.Decode(t, body, &candidature)
	return candidature
}

func TestCandidatureVisibleOnlyToItsAuthor(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	recruiterToken, _ := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	category := helpers.CreateCategory(t, ts.DB, "IT")
	annonce := publishAnnonce(t, ts, recruiterToken, category.ID, "Dev Go")

	carlToken, carlID := ts.Register(t, "Carl", "carl@example.com", models.UserRoleCandidate)
	cleoToken, _ := ts.Register(t, "Cleo", "cleo@example.com", models.UserRoleCandidate)

	// 2. Действие
	candidature := applyTo(t, ts, carlToken, annonce.ID)
	t.Logf("Кандидатура создана: %s", candidature.ID)

	// 3. Проверка
	assert.Equal(t, "En attente", candidature.Statut, "статус от клиента игнорируется")
	assert.Equal(t, carlID, candidature.CandidatID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/candidatures", carlToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mine candidatureListJSON
	helpers.Decode(t, body, &mine)
	require.Len(t, mine.Candidatures, 1)
	assert.Equal(t, candidature.ID, mine.Candidatures[0].ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/candidatures", cleoToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var others candidatureListJSON
	helpers.Decode(t, body, &others)
	assert.Empty(t, others.Candidatures)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/candidatures/"+candidature.ID, cleoToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestPublishedAnnonceListedWithCategory(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	token, recruiterID := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	c1 := helpers.CreateCategory(t, ts.DB, "IT")
	c2 := helpers.CreateCategory(t, ts.DB, "Finance")

	// 2. Действие
	created := publishAnnonce(t, ts, token, c1.ID, "Dev Go")

	// 3. Проверка
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/annonces", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list annonceListJSON
	helpers.Decode(t, body, &list)
	require.Len(t, list.Annonces, 1)
	assert.Equal(t, created.ID, list.Annonces[0].ID)
	assert.Equal(t, c1.ID, list.Annonces[0].CategorieID)
	require.NotNil(t, list.Annonces[0].Categorie)
	assert.Equal(t, "IT", list.Annonces[0].Categorie.Name)
	assert.Equal(t, recruiterID, list.Annonces[0].RecruteurID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/annonces?categorie_id="+c2.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var filtered annonceListJSON
	helpers.Decode(t, body, &filtered)
	assert.Empty(t, filtered.Annonces)
}

func TestRecruiterAcceptsCandidature(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	recruiterToken, _ := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	category := helpers.CreateCategory(t, ts.DB, "IT")
	annonce := publishAnnonce(t, ts, recruiterToken, category.ID, "Dev Go")
	candidateToken, _ := ts.Register(t, "Carl", "carl@example.com", models.UserRoleCandidate)
	candidature := applyTo(t, ts, candidateToken, annonce.ID)

	// 2. Действие
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/candidatures/"+candidature.ID+"/statut", recruiterToken,
		map[string]string{"statut": "Accepte"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// 3. Проверка
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/candidatures/"+candidature.ID, candidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var fetched candidatureJSON
	helpers.Decode(t, body, &fetched)
	assert.Equal(t, "Accepte", fetched.Statut)

	assert.Len(t, ts.Mail.SentTo("carl@example.com"), 1, "письмо кандидату поставлено в очередь")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", candidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var notifications struct {
		Notifications []struct {
			Type   string  `json:"type"`
			ReadAt *string `json:"read_at"`
		} `json:"notifications"`
		Total int64 `json:"total"`
	}
	helpers.Decode(t, body, &notifications)
	require.Equal(t, int64(1), notifications.Total)
	assert.Equal(t, models.NotificationTypeCandidatureStatus, notifications.Notifications[0].Type)
	assert.Nil(t, notifications.Notifications[0].ReadAt)

	// Повтор того же статуса ничего не отправляет
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/candidatures/"+candidature.ID+"/statut", recruiterToken,
		map[string]string{"statut": "Accepte"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, ts.Mail.SentTo("carl@example.com"), 1)

	// Неизвестный статус - ошибка валидации
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/candidatures/"+candidature.ID+"/statut", recruiterToken,
		map[string]string{"statut": "Archivee"})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	// Кандидат не может менять статус
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/candidatures/"+candidature.ID+"/statut", candidateToken,
		map[string]string{"statut": "Refuse"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestNonOwnerCannotDeleteAnnonce(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	ownerToken, _ := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	otherToken, _ := ts.Register(t, "Otto", "otto@example.com", models.UserRoleRecruiter)
	category := helpers.CreateCategory(t, ts.DB, "IT")
	annonce := publishAnnonce(t, ts, ownerToken, category.ID, "Dev Go")

	// 2. Действие
	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/annonces/"+annonce.ID, otherToken, nil)

	// 3. Проверка
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/annonces/"+annonce.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var fetched annonceJSON
	helpers.Decode(t, body, &fetched)
	assert.Equal(t, "Dev Go", fetched.Title)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/annonces/"+annonce.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/annonces/"+annonce.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMesAnnoncesOnlyOwn(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ritaToken, ritaID := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	ottoToken, _ := ts.Register(t, "Otto", "otto@example.com", models.UserRoleRecruiter)
	candidateToken, _ := ts.Register(t, "Carl", "carl@example.com", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, ts.DB, "IT")

	publishAnnonce(t, ts, ritaToken, category.ID, "Dev")
	publishAnnonce(t, ts, ottoToken, category.ID, "Ops")
	publishAnnonce(t, ts, ottoToken, category.ID, "QA")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/mes-annonces", ritaToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mine annonceListJSON
	helpers.Decode(t, body, &mine)
	require.Len(t, mine.Annonces, 1)
	assert.Equal(t, ritaID, mine.Annonces[0].RecruteurID)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/mes-annonces", candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/annonces", candidateToken, map[string]string{
		"title": "X", "description": "Y", "categorie_id": category.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
