package dto

import "jobboard_backend/internal/models"

// UpdateProfileRequest - частичное обновление профиля.
// Роль здесь отсутствует намеренно: она не меняется после создания.
type UpdateProfileRequest struct {
	Name                 *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Email                *string `json:"email" form:"email" validate:"omitnil,email,max=255"`
	Password             *string `json:"password" form:"password" validate:"omitnil,min=8"`
	PasswordConfirmation *string `json:"password_confirmation" form:"password_confirmation"`
}

// UserListQuery - фильтры списка пользователей (админ)
type UserListQuery struct {
	Role     string `form:"role" validate:"omitempty,user_role"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type UserListResponse struct {
	Users    []models.User `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
