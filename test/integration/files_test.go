package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnonceThumbnailLifecycle(t *testing.T) {
	// 1. Подготовка
	ts := helpers.NewTestServer(t)
	token, _ := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	category := helpers.CreateCategory(t, ts.DB, "IT")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/annonces", token,
		map[string]string{"title": "Dev Go", "description": "Backend", "categorie_id": category.ID},
		map[string]helpers.FileUpload{"thumbnail": {Filename: "logo.png", Content: helpers.PNGBytes}})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var annonce annonceJSON
	helpers.Decode(t, body, &annonce)
	require.NotNil(t, annonce.Thumbnail)
	first := *annonce.Thumbnail

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/files/"+first, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))

	// 2. Действие: замена файла через POST + _method=PUT
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/annonces/"+annonce.ID, token,
		map[string]string{"_method": "PUT", "title": "Dev Go", "description": "Backend", "categorie_id": category.ID},
		map[string]helpers.FileUpload{"thumbnail": {Filename: "new.png", Content: helpers.PNGBytes}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// 3. Проверка
	var updated annonceJSON
	helpers.Decode(t, body, &updated)
	require.NotNil(t, updated.Thumbnail)
	assert.NotEqual(t, first, *updated.Thumbnail)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/files/"+first, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "старая миниатюра удалена")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/annonces/"+annonce.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/files/"+*updated.Thumbnail, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUploadValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	recruiterToken, _ := ts.Register(t, "Rita", "rita@example.com", models.UserRoleRecruiter)
	candidateToken, _ := ts.Register(t, "Carl", "carl@example.com", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, ts.DB, "IT")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/annonces", recruiterToken,
		map[string]string{"title": "Dev Go", "description": "Backend", "categorie_id": category.ID},
		map[string]helpers.FileUpload{"thumbnail": {Filename: "logo.png", Content: helpers.PDFBytes}})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	assert.Contains(t, body, "thumbnail")

	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/annonces", recruiterToken,
		map[string]string{"description": "Sans titre", "categorie_id": category.ID}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	var list annonceListJSON
	_, body = ts.SendRequest(t, http.MethodGet, "/api/v1/annonces", "", nil)
	helpers.Decode(t, body, &list)
	assert.Empty(t, list.Annonces, "невалидные запросы ничего не создают")

	annonce := publishAnnonce(t, ts, recruiterToken, category.ID, "Dev Go")

	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/candidatures", candidateToken,
		map[string]string{"objet": "CV", "lettre": "Bonjour", "annonce_id": annonce.ID},
		map[string]helpers.FileUpload{"document": {Filename: "cv.pdf", Content: helpers.PDFBytes}})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var candidature candidatureJSON
	helpers.Decode(t, body, &candidature)
	require.NotNil(t, candidature.Document)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/files/"+*candidature.Document, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/files/../../etc/passwd", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
