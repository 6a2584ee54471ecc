package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationService interface {
	// RecordStatusChange сохраняет уведомление кандидату. Вызывается внутри транзакции смены статуса.
	RecordStatusChange(db *gorm.DB, candidature *models.Candidature, status models.CandidatureStatus) (*models.Notification, error)
	// SendStatusEmail ставит письмо о смене статуса в очередь отправки
	SendStatusEmail(ctx context.Context, candidature *models.Candidature, status models.CandidatureStatus)
	SendPasswordReset(ctx context.Context, user *models.User, token string, ttl time.Duration)

	List(db *gorm.DB, userID string, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error)
	MarkAsRead(db *gorm.DB, userID, id string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	mailer           MailQueue
	templates        email.TemplateRenderer
	frontendURL      string
	now              clock
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	mailer MailQueue,
	templates email.TemplateRenderer,
	frontendURL string,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		mailer:           mailer,
		templates:        templates,
		frontendURL:      strings.TrimRight(frontendURL, "/"),
		now:              time.Now,
	}
}

func statusMessage(status models.CandidatureStatus) string {
	switch status {
	case models.CandidatureStatusAccepted:
		return "a été acceptée"
	case models.CandidatureStatusRejected:
		return "a été refusée"
	default:
		return "est de nouveau en attente"
	}
}

func annonceTitle(c *models.Candidature) string {
	if c.Annonce != nil {
		return c.Annonce.Title
	}
	return ""
}

func (s *NotificationServiceImpl) RecordStatusChange(db *gorm.DB, c *models.Candidature, status models.CandidatureStatus) (*models.Notification, error) {
	payload, err := json.Marshal(dto.CandidatureStatusPayload{
		CandidatureID: c.ID,
		AnnonceID:     c.AnnonceID,
		AnnonceTitle:  annonceTitle(c),
		NouveauStatut: string(status),
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	notification := &models.Notification{
		UserID:  c.CandidatID,
		Type:    models.NotificationTypeCandidatureStatus,
		Title:   "Mise à jour de votre candidature",
		Message: fmt.Sprintf("Votre candidature pour « %s » %s.", annonceTitle(c), statusMessage(status)),
		Data:    datatypes.JSON(payload),
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *NotificationServiceImpl) SendStatusEmail(ctx context.Context, c *models.Candidature, status models.CandidatureStatus) {
	if c.Candidat == nil || c.Candidat.Email == "" {
		logger.CtxWarn(ctx, "candidate email unknown, status email skipped", "candidature_id", c.ID)
		return
	}

	body, err := s.templates.Render(email.TemplateCandidatureStatus, email.TemplateData{
		"Name":          c.Candidat.Name,
		"AnnonceTitle":  annonceTitle(c),
		"StatusMessage": statusMessage(status),
		"Statut":        string(status),
		"DetailsURL":    fmt.Sprintf("%s/candidatures/%s", s.frontendURL, c.ID),
	})
	if err != nil {
		logger.CtxWithError(ctx, "failed to render status email", err, "candidature_id", c.ID)
		return
	}

	s.enqueue(ctx, &email.Email{
		To:       []string{c.Candidat.Email},
		Subject:  fmt.Sprintf("Votre candidature pour « %s »", annonceTitle(c)),
		Body:     fmt.Sprintf("Bonjour %s, votre candidature pour « %s » %s.", c.Candidat.Name, annonceTitle(c), statusMessage(status)),
		HTMLBody: body,
	})
}

func (s *NotificationServiceImpl) SendPasswordReset(ctx context.Context, user *models.User, token string, ttl time.Duration) {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s", s.frontendURL, token, user.Email)

	body, err := s.templates.Render(email.TemplatePasswordReset, email.TemplateData{
		"Name":      user.Name,
		"ResetURL":  resetURL,
		"Token":     token,
		"ExpiresIn": int(ttl.Minutes()),
	})
	if err != nil {
		logger.CtxWithError(ctx, "failed to render password reset email", err, "user_id", user.ID)
		return
	}

	s.enqueue(ctx, &email.Email{
		To:       []string{user.Email},
		Subject:  "Réinitialisation du mot de passe",
		Body:     "Utilisez ce lien pour réinitialiser votre mot de passe : " + resetURL,
		HTMLBody: body,
	})
}

func (s *NotificationServiceImpl) enqueue(ctx context.Context, msg *email.Email) {
	if s.mailer == nil {
		return
	}
	if !s.mailer.Enqueue(msg) {
		logger.CtxWarn(ctx, "mail queue is full, email dropped", "to", strings.Join(msg.To, ","), "subject", msg.Subject)
	}
}

func (s *NotificationServiceImpl) List(db *gorm.DB, userID string, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	notifications, total, err := s.notificationRepo.FindByUser(db, userID, query.UnreadOnly,
		repositories.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

func (s *NotificationServiceImpl) MarkAsRead(db *gorm.DB, userID, id string) error {
	if err := s.notificationRepo.MarkAsRead(db, id, userID, s.now()); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
