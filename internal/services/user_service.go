package services

import (
	"errors"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error)

	// Admin
	ListUsers(db *gorm.DB, query *dto.UserListQuery) (*dto.UserListResponse, error)
	GetUser(db *gorm.DB, id string) (*models.User, error)
	DeleteUser(db *gorm.DB, actor Actor, id string) error
	// SeedAdmin создает первого администратора, если в системе нет ни одного
	SeedAdmin(db *gorm.DB, name, email, password string) (bool, error)
}

type UserServiceImpl struct {
	userRepo        repositories.UserRepository
	annonceRepo     repositories.AnnonceRepository
	candidatureRepo repositories.CandidatureRepository
	files           *storage.Attachments
}

func NewUserService(
	userRepo repositories.UserRepository,
	annonceRepo repositories.AnnonceRepository,
	candidatureRepo repositories.CandidatureRepository,
	files *storage.Attachments,
) UserService {
	return &UserServiceImpl{
		userRepo:        userRepo,
		annonceRepo:     annonceRepo,
		candidatureRepo: candidatureRepo,
		files:           files,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile - частичное обновление имени, email и пароля
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	if req.Password != nil && (req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password) {
		return nil, apperrors.FieldError("password", "The password confirmation does not match.")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user, err := s.userRepo.FindByID(tx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		taken, err := s.userRepo.EmailExists(tx, *req.Email, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.FieldError("email", "The email has already been taken.")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(tx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.FieldError("email", "The email has already been taken.")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, query *dto.UserListQuery) (*dto.UserListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	users, total, err := s.userRepo.List(db, models.UserRole(query.Role),
		repositories.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if users == nil {
		users = []models.User{}
	}

	return &dto.UserListResponse{
		Users:    users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id string) (*models.User, error) {
	return s.GetProfile(db, id)
}

// DeleteUser удаляет пользователя вместе с вакансиями, кандидатурами и их файлами
func (s *UserServiceImpl) DeleteUser(db *gorm.DB, actor Actor, id string) error {
	if actor.UserID == id {
		return apperrors.ErrCannotModifySelf
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.userRepo.FindByID(tx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	// Пути собираются до удаления: строки уйдут каскадом
	thumbnails, err := s.annonceRepo.ThumbnailsByRecruiter(tx, id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	documents, err := s.candidatureRepo.DocumentsByUser(tx, id)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.Delete(tx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	ctx := ctxOf(db)
	s.files.DeleteFiles(ctx, append(thumbnails, documents...)...)
	logger.CtxInfo(ctx, "user deleted", "user_id", id, "by", actor.UserID)
	return nil
}

func (s *UserServiceImpl) SeedAdmin(db *gorm.DB, name, email, password string) (bool, error) {
	_, total, err := s.userRepo.List(db, models.UserRoleAdmin, repositories.Pagination{Page: 1, PageSize: 1})
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	if total > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := s.userRepo.Create(db, admin); err != nil {
		return false, apperrors.InternalError(err)
	}
	return true, nil
}
