package dto

import (
	"mime/multipart"

	"jobboard_backend/internal/models"
)

// CreateCandidatureRequest - подача кандидатуры.
// Статус не принимается от клиента: новая кандидатура всегда "En attente".
type CreateCandidatureRequest struct {
	Objet     string                `json:"objet" form:"objet" validate:"required,max=255"`
	Lettre    string                `json:"lettre" form:"lettre" validate:"required"`
	AnnonceID string                `json:"annonce_id" form:"annonce_id" validate:"required"`
	Document  *multipart.FileHeader `json:"-" form:"document"`
}

// UpdateCandidatureRequest - частичное изменение содержимого кандидатуры автором
type UpdateCandidatureRequest struct {
	Objet          *string               `json:"objet" form:"objet" validate:"omitnil,min=1,max=255"`
	Lettre         *string               `json:"lettre" form:"lettre" validate:"omitnil,min=1"`
	Document       *multipart.FileHeader `json:"-" form:"document"`
	RemoveDocument bool                  `json:"remove_document" form:"remove_document"`
}

// UpdateStatusRequest - смена статуса владельцем вакансии
type UpdateStatusRequest struct {
	Statut models.CandidatureStatus `json:"statut" form:"statut" validate:"required,candidature_status"`
}

type CandidatureListResponse struct {
	Candidatures []models.Candidature `json:"candidatures"`
	Total        int                  `json:"total"`
}
