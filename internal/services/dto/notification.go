package dto

import "jobboard_backend/internal/models"

// NotificationListQuery - фильтры списка уведомлений
type NotificationListQuery struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// CandidatureStatusPayload - данные уведомления о смене статуса
type CandidatureStatusPayload struct {
	CandidatureID string `json:"candidature_id"`
	AnnonceID     string `json:"annonce_id"`
	AnnonceTitle  string `json:"annonce_title"`
	NouveauStatut string `json:"nouveau_statut"`
}
