package services_test

import (
	"path/filepath"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countNotifications(t *testing.T, env *testEnv, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func TestCandidatureService_CreateIsPending(t *testing.T) {
	env := newTestEnv(t)
	recruiter := helpers.CreateUser(t, env.db, "Rita", "rita@example.com", "password123", models.UserRoleRecruiter)
	candidate := helpers.CreateUser(t, env.db, "Carl", "carl@example.com", "password123", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, env.db, "IT")
	annonce := helpers.CreateAnnonce(t, env.db, recruiter.ID, category.ID, "Dev Go")

	candidature, err := env.svc.CandidatureService.Create(env.db, candidate.ID, &dto.CreateCandidatureRequest{
		Objet:     "Motivation",
		Lettre:    "Bonjour",
		AnnonceID: annonce.ID,
		Document:  helpers.FileHeader(t, "document", "cv.pdf", helpers.PDFBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CandidatureStatusPending, candidature.Statut)
	assert.Equal(t, candidate.ID, candidature.CandidatID)
	require.NotNil(t, candidature.Document)
	assert.FileExists(t, filepath.Join(env.filesDir, *candidature.Document))

	_, err = env.svc.CandidatureService.Create(env.db, candidate.ID, &dto.CreateCandidatureRequest{
		Objet:     "Motivation",
		Lettre:    "Bonjour",
		AnnonceID: "00000000-0000-0000-0000-000000000000",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)
}

func TestCandidatureService_UpdateStatus(t *testing.T) {
	// 1. Подготовка
	env := newTestEnv(t)
	owner := helpers.CreateUser(t, env.db, "Rita", "rita@example.com", "password123", models.UserRoleRecruiter)
	other := helpers.CreateUser(t, env.db, "Otto", "otto@example.com", "password123", models.UserRoleRecruiter)
	candidate := helpers.CreateUser(t, env.db, "Carl", "carl@example.com", "password123", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, env.db, "IT")
	annonce := helpers.CreateAnnonce(t, env.db, owner.ID, category.ID, "Dev Go")
	candidature := helpers.CreateCandidature(t, env.db, candidate.ID, annonce.ID)

	accept := &dto.UpdateStatusRequest{Statut: models.CandidatureStatusAccepted}

	t.Run("чужой рекрутер", func(t *testing.T) {
		_, err := env.svc.CandidatureService.UpdateStatus(env.db, other.ID, candidature.ID, accept)
		assert.ErrorIs(t, err, apperrors.ErrNotAnnonceOwner)

		stored, err := env.svc.CandidatureService.Get(env.db, services.Actor{UserID: candidate.ID, Role: models.UserRoleCandidate}, candidature.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CandidatureStatusPending, stored.Statut)
		assert.Zero(t, countNotifications(t, env, candidate.ID))
		assert.Empty(t, env.mail.Messages())
	})

	t.Run("смена статуса уведомляет кандидата один раз", func(t *testing.T) {
		// 2. Действие
		updated, err := env.svc.CandidatureService.UpdateStatus(env.db, owner.ID, candidature.ID, accept)

		// 3. Проверка
		require.NoError(t, err)
		assert.Equal(t, models.CandidatureStatusAccepted, updated.Statut)
		assert.Equal(t, int64(1), countNotifications(t, env, candidate.ID))

		sent := env.mail.SentTo("carl@example.com")
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].Subject, "Dev Go")
		assert.Contains(t, sent[0].HTMLBody, "Accepte")
		assert.Contains(t, sent[0].HTMLBody, "http://front.test/candidatures/"+candidature.ID)
	})

	t.Run("тот же статус без уведомления", func(t *testing.T) {
		_, err := env.svc.CandidatureService.UpdateStatus(env.db, owner.ID, candidature.ID, accept)
		require.NoError(t, err)

		assert.Equal(t, int64(1), countNotifications(t, env, candidate.ID))
		assert.Len(t, env.mail.SentTo("carl@example.com"), 1)
	})

	t.Run("переполненная очередь не ломает смену статуса", func(t *testing.T) {
		env.mail.Full = true
		defer func() { env.mail.Full = false }()

		updated, err := env.svc.CandidatureService.UpdateStatus(env.db, owner.ID, candidature.ID,
			&dto.UpdateStatusRequest{Statut: models.CandidatureStatusRejected})
		require.NoError(t, err)
		assert.Equal(t, models.CandidatureStatusRejected, updated.Statut)
		assert.Equal(t, int64(2), countNotifications(t, env, candidate.ID))
	})
}

func TestCandidatureService_Access(t *testing.T) {
	env := newTestEnv(t)
	owner := helpers.CreateUser(t, env.db, "Rita", "rita@example.com", "password123", models.UserRoleRecruiter)
	other := helpers.CreateUser(t, env.db, "Otto", "otto@example.com", "password123", models.UserRoleRecruiter)
	author := helpers.CreateUser(t, env.db, "Carl", "carl@example.com", "password123", models.UserRoleCandidate)
	stranger := helpers.CreateUser(t, env.db, "Sam", "sam@example.com", "password123", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, env.db, "IT")
	annonce := helpers.CreateAnnonce(t, env.db, owner.ID, category.ID, "Dev Go")
	candidature := helpers.CreateCandidature(t, env.db, author.ID, annonce.ID)

	svc := env.svc.CandidatureService

	_, err := svc.Get(env.db, services.Actor{UserID: owner.ID, Role: models.UserRoleRecruiter}, candidature.ID)
	assert.NoError(t, err)
	_, err = svc.Get(env.db, services.Actor{UserID: other.ID, Role: models.UserRoleRecruiter}, candidature.ID)
	assert.ErrorIs(t, err, apperrors.ErrCandidatureAccessDenied)
	_, err = svc.Get(env.db, services.Actor{UserID: stranger.ID, Role: models.UserRoleCandidate}, candidature.ID)
	assert.ErrorIs(t, err, apperrors.ErrCandidatureAccessDenied)

	objet := "Nouvel objet"
	_, err = svc.Update(env.db, stranger.ID, candidature.ID, &dto.UpdateCandidatureRequest{Objet: &objet})
	assert.ErrorIs(t, err, apperrors.ErrCandidatureAccessDenied)

	updated, err := svc.Update(env.db, author.ID, candidature.ID, &dto.UpdateCandidatureRequest{Objet: &objet})
	require.NoError(t, err)
	assert.Equal(t, objet, updated.Objet)
	assert.Equal(t, models.CandidatureStatusPending, updated.Statut)

	list, err := svc.List(env.db, services.Actor{UserID: owner.ID, Role: models.UserRoleRecruiter})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = svc.List(env.db, services.Actor{UserID: other.ID, Role: models.UserRoleRecruiter})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Candidatures)

	_, err = svc.ListByAnnonce(env.db, other.ID, annonce.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotAnnonceOwner)

	assert.ErrorIs(t, svc.Delete(env.db, stranger.ID, candidature.ID), apperrors.ErrCandidatureAccessDenied)
	require.NoError(t, svc.Delete(env.db, author.ID, candidature.ID))
	_, err = svc.Get(env.db, services.Actor{UserID: author.ID, Role: models.UserRoleCandidate}, candidature.ID)
	assert.ErrorIs(t, err, apperrors.ErrCandidatureNotFound)
}
