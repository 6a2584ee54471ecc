package services_test

import (
	"encoding/json"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListAndMarkAsRead(t *testing.T) {
	// 1. Подготовка
	env := newTestEnv(t)
	recruiter := helpers.CreateUser(t, env.db, "Rita", "rita@example.com", "password123", models.UserRoleRecruiter)
	candidate := helpers.CreateUser(t, env.db, "Carl", "carl@example.com", "password123", models.UserRoleCandidate)
	intruder := helpers.CreateUser(t, env.db, "Ivan", "ivan@example.com", "password123", models.UserRoleCandidate)
	category := helpers.CreateCategory(t, env.db, "IT")
	annonce := helpers.CreateAnnonce(t, env.db, recruiter.ID, category.ID, "Dev Go")
	candidature := helpers.CreateCandidature(t, env.db, candidate.ID, annonce.ID)

	_, err := env.svc.CandidatureService.UpdateStatus(env.db, recruiter.ID, candidature.ID,
		&dto.UpdateStatusRequest{Statut: models.CandidatureStatusRejected})
	require.NoError(t, err)

	// 2. Действие
	list, err := env.svc.NotificationService.List(env.db, candidate.ID, &dto.NotificationListQuery{})
	require.NoError(t, err)

	// 3. Проверка
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, int64(1), list.Total)
	notification := list.Notifications[0]
	assert.Nil(t, notification.ReadAt)

	var payload dto.CandidatureStatusPayload
	require.NoError(t, json.Unmarshal(notification.Data, &payload))
	assert.Equal(t, candidature.ID, payload.CandidatureID)
	assert.Equal(t, annonce.ID, payload.AnnonceID)
	assert.Equal(t, "Dev Go", payload.AnnonceTitle)
	assert.Equal(t, string(models.CandidatureStatusRejected), payload.NouveauStatut)

	t.Run("чужое уведомление не найдено", func(t *testing.T) {
		err := env.svc.NotificationService.MarkAsRead(env.db, intruder.ID, notification.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})

	t.Run("прочитанное исчезает из непрочитанных", func(t *testing.T) {
		require.NoError(t, env.svc.NotificationService.MarkAsRead(env.db, candidate.ID, notification.ID))
		require.NoError(t, env.svc.NotificationService.MarkAsRead(env.db, candidate.ID, notification.ID))

		unread, err := env.svc.NotificationService.List(env.db, candidate.ID, &dto.NotificationListQuery{UnreadOnly: true})
		require.NoError(t, err)
		assert.Empty(t, unread.Notifications)

		all, err := env.svc.NotificationService.List(env.db, candidate.ID, &dto.NotificationListQuery{})
		require.NoError(t, err)
		require.Len(t, all.Notifications, 1)
		assert.NotNil(t, all.Notifications[0].ReadAt)
	})
}
