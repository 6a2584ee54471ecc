package dto

import (
	"mime/multipart"

	"jobboard_backend/internal/models"
)

// AnnonceRequest - создание и обновление вакансии (multipart или JSON)
type AnnonceRequest struct {
	Title           string                `json:"title" form:"title" validate:"required,max=255"`
	Description     string                `json:"description" form:"description" validate:"required"`
	CategorieID     string                `json:"categorie_id" form:"categorie_id" validate:"required"`
	Thumbnail       *multipart.FileHeader `json:"-" form:"thumbnail"`
	RemoveThumbnail bool                  `json:"remove_thumbnail" form:"remove_thumbnail"`
}

// AnnonceListQuery - фильтры публичного списка вакансий
type AnnonceListQuery struct {
	CategorieID string `form:"categorie_id"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
}

type AnnonceListResponse struct {
	Annonces []models.Annonce `json:"annonces"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
