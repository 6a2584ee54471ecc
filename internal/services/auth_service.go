package services

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const resetTokenBytes = 32

var errInvalidResetToken = apperrors.FieldError("email", "This password reset token is invalid.")

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, tokenID string) error
	Refresh(db *gorm.DB, actor Actor, tokenID string) (*dto.AuthResponse, error)
	// Authenticate проверяет подпись JWT и наличие серверной записи токена
	Authenticate(db *gorm.DB, tokenStr string) (*auth.Claims, error)
	ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) error
	ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokenRepo     repositories.AccessTokenRepository
	resetRepo     repositories.PasswordResetRepository
	tokens        *auth.TokenManager
	notifications NotificationService
	resetTTL      time.Duration
	now           clock
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.AccessTokenRepository,
	resetRepo repositories.PasswordResetRepository,
	tokens *auth.TokenManager,
	notifications NotificationService,
	resetTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		resetRepo:     resetRepo,
		tokens:        tokens,
		notifications: notifications,
		resetTTL:      resetTTL,
		now:           time.Now,
	}
}

// Register - регистрация кандидата или рекрутера с выдачей токена
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	exists, err := s.userRepo.EmailExists(tx, req.Email, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.FieldError("email", "The email has already been taken.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(tx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.FieldError("email", "The email has already been taken.")
		}
		return nil, apperrors.InternalError(err)
	}

	authz, err := s.issueToken(tx, user)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "user registered", "user_id", user.ID, "role", user.Role)

	return &dto.AuthResponse{
		Status:        "success",
		Message:       "User created successfully",
		User:          user,
		Role:          user.Role,
		Authorisation: *authz,
	}, nil
}

// Login - вход по email и паролю
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	authz, err := s.issueToken(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Status:        "success",
		User:          user,
		Role:          user.Role,
		Authorisation: *authz,
	}, nil
}

// Logout удаляет серверную запись текущего токена
func (s *AuthServiceImpl) Logout(db *gorm.DB, tokenID string) error {
	if err := s.tokenRepo.Delete(db, tokenID); err != nil {
		if errors.Is(err, repositories.ErrAccessTokenNotFound) {
			return apperrors.ErrUnauthenticated
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Refresh выдает новый токен и отзывает текущий
func (s *AuthServiceImpl) Refresh(db *gorm.DB, actor Actor, tokenID string) (*dto.AuthResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user, err := s.userRepo.FindByID(tx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.tokenRepo.Delete(tx, tokenID); err != nil {
		if errors.Is(err, repositories.ErrAccessTokenNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	authz, err := s.issueToken(tx, user)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Status:        "success",
		User:          user,
		Role:          user.Role,
		Authorisation: *authz,
	}, nil
}

func (s *AuthServiceImpl) Authenticate(db *gorm.DB, tokenStr string) (*auth.Claims, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated.WithError(err)
	}

	record, err := s.tokenRepo.FindByID(db, claims.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccessTokenNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}
	if !record.ExpiresAt.After(s.now()) || record.UserID != claims.UserID {
		return nil, apperrors.ErrUnauthenticated
	}

	return claims, nil
}

// ForgotPassword всегда завершается успешно, чтобы не раскрывать наличие email
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		return apperrors.InternalError(err)
	}
	hash, err := auth.HashPassword(token)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.resetRepo.Save(db, &models.PasswordReset{
		Email:     user.Email,
		TokenHash: hash,
		CreatedAt: s.now(),
	}); err != nil {
		return apperrors.InternalError(err)
	}

	s.notifications.SendPasswordReset(ctxOf(db), user, token, s.resetTTL)
	return nil
}

// ResetPassword меняет пароль по токену и отзывает все токены доступа пользователя
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user, err := s.userRepo.FindByEmail(tx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return errInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	reset, err := s.resetRepo.FindByEmail(tx, user.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrPasswordResetNotFound) {
			return errInvalidResetToken
		}
		return apperrors.InternalError(err)
	}
	if s.now().After(reset.CreatedAt.Add(s.resetTTL)) || !auth.CheckPasswordHash(req.Token, reset.TokenHash) {
		return errInvalidResetToken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(tx, user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.resetRepo.DeleteByEmail(tx, user.Email); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.tokenRepo.DeleteByUser(tx, user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "password reset", "user_id", user.ID)
	return nil
}

// issueToken подписывает JWT и сохраняет его запись в access_tokens
func (s *AuthServiceImpl) issueToken(db *gorm.DB, user *models.User) (*dto.Authorisation, error) {
	token, claims, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.AccessToken{
		ID:        claims.ID,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.Authorisation{
		Token:     token,
		Type:      "bearer",
		ExpiresAt: record.ExpiresAt,
	}, nil
}
