package services

import (
	"errors"
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

var errCategoryNameTaken = apperrors.FieldError("name", "The name has already been taken.")

type CategoryService interface {
	List(db *gorm.DB) ([]models.Category, error)
	Get(db *gorm.DB, id string) (*models.Category, error)
	Create(db *gorm.DB, req *dto.CategoryRequest) (*models.Category, error)
	Update(db *gorm.DB, id string, req *dto.CategoryRequest) (*models.Category, error)
	Delete(db *gorm.DB, id string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Get(db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Create(db *gorm.DB, req *dto.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.categoryRepo.NameExists(db, name, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, errCategoryNameTaken
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(db, category); err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(db *gorm.DB, id string, req *dto.CategoryRequest) (*models.Category, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	category, err := s.categoryRepo.FindByID(tx, id)
	if err != nil {
		return nil, mapCategoryError(err)
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.categoryRepo.NameExists(tx, name, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, errCategoryNameTaken
	}

	category.Name = name
	if err := s.categoryRepo.Update(tx, category); err != nil {
		return nil, mapCategoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

// Delete запрещен, пока на категорию ссылается хотя бы одна вакансия
func (s *CategoryServiceImpl) Delete(db *gorm.DB, id string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.categoryRepo.FindByID(tx, id); err != nil {
		return mapCategoryError(err)
	}

	inUse, err := s.categoryRepo.CountAnnonces(tx, id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inUse > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(tx, id); err != nil {
		return mapCategoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func mapCategoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return apperrors.ErrCategoryNotFound
	case errors.Is(err, repositories.ErrCategoryAlreadyExists):
		return errCategoryNameTaken
	default:
		return apperrors.InternalError(err)
	}
}
