package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// RegisterRequest - запрос регистрации. Администратор через регистрацию не создается.
type RegisterRequest struct {
	Name     string          `json:"name" form:"name" validate:"required,max=255"`
	Email    string          `json:"email" form:"email" validate:"required,email,max=255"`
	Password string          `json:"password" form:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" form:"role" validate:"required,self_register_role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ForgotPasswordRequest - запрос письма для сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ResetPasswordRequest - установка нового пароля по токену
type ResetPasswordRequest struct {
	Email                string `json:"email" form:"email" validate:"required,email"`
	Token                string `json:"token" form:"token" validate:"required"`
	Password             string `json:"password" form:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" validate:"required,eqfield=Password"`
}

// Authorisation - выданный bearer-токен
type Authorisation struct {
	Token     string    `json:"token"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponse - ответ регистрации, входа и обновления токена
type AuthResponse struct {
	Status        string          `json:"status"`
	Message       string          `json:"message,omitempty"`
	User          *models.User    `json:"user"`
	Role          models.UserRole `json:"role"`
	Authorisation Authorisation   `json:"authorisation"`
}

// MessageResponse - простой ответ со статусом
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
