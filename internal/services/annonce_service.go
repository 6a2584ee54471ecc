package services

import (
	"errors"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnnonceService interface {
	List(db *gorm.DB, query *dto.AnnonceListQuery) (*dto.AnnonceListResponse, error)
	ListByRecruiter(db *gorm.DB, recruteurID string, query *dto.AnnonceListQuery) (*dto.AnnonceListResponse, error)
	Get(db *gorm.DB, id string) (*models.Annonce, error)
	Create(db *gorm.DB, recruteurID string, req *dto.AnnonceRequest) (*models.Annonce, error)
	Update(db *gorm.DB, recruteurID, id string, req *dto.AnnonceRequest) (*models.Annonce, error)
	Delete(db *gorm.DB, recruteurID, id string) error
}

type AnnonceServiceImpl struct {
	annonceRepo     repositories.AnnonceRepository
	categoryRepo    repositories.CategoryRepository
	candidatureRepo repositories.CandidatureRepository
	files           *storage.Attachments
	thumbnails      storage.AttachmentPolicy
}

func NewAnnonceService(
	annonceRepo repositories.AnnonceRepository,
	categoryRepo repositories.CategoryRepository,
	candidatureRepo repositories.CandidatureRepository,
	files *storage.Attachments,
	thumbnails storage.AttachmentPolicy,
) AnnonceService {
	return &AnnonceServiceImpl{
		annonceRepo:     annonceRepo,
		categoryRepo:    categoryRepo,
		candidatureRepo: candidatureRepo,
		files:           files,
		thumbnails:      thumbnails,
	}
}

func (s *AnnonceServiceImpl) List(db *gorm.DB, query *dto.AnnonceListQuery) (*dto.AnnonceListResponse, error) {
	return s.list(db, repositories.AnnonceCriteria{CategorieID: query.CategorieID}, query)
}

func (s *AnnonceServiceImpl) ListByRecruiter(db *gorm.DB, recruteurID string, query *dto.AnnonceListQuery) (*dto.AnnonceListResponse, error) {
	return s.list(db, repositories.AnnonceCriteria{
		CategorieID: query.CategorieID,
		RecruteurID: recruteurID,
	}, query)
}

func (s *AnnonceServiceImpl) list(db *gorm.DB, criteria repositories.AnnonceCriteria, query *dto.AnnonceListQuery) (*dto.AnnonceListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)
	criteria.Pagination = repositories.Pagination{Page: page, PageSize: pageSize}

	annonces, total, err := s.annonceRepo.List(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if annonces == nil {
		annonces = []models.Annonce{}
	}

	return &dto.AnnonceListResponse{
		Annonces: annonces,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *AnnonceServiceImpl) Get(db *gorm.DB, id string) (*models.Annonce, error) {
	annonce, err := s.annonceRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnnonceNotFound) {
			return nil, apperrors.ErrAnnonceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return annonce, nil
}

// Create - публикация вакансии. Миниатюра сохраняется до записи строки и удаляется, если запись не удалась.
func (s *AnnonceServiceImpl) Create(db *gorm.DB, recruteurID string, req *dto.AnnonceRequest) (*models.Annonce, error) {
	ctx := ctxOf(db)

	if err := s.checkCategory(db, req.CategorieID); err != nil {
		return nil, err
	}

	thumbnail := s.files.Attach(s.thumbnails, nil)
	if req.Thumbnail != nil {
		if err := thumbnail.Replace(ctx, req.Thumbnail); err != nil {
			return nil, err
		}
	}

	annonce := &models.Annonce{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Thumbnail:   thumbnail.Path(),
		CategorieID: req.CategorieID,
		RecruteurID: recruteurID,
	}

	if err := s.annonceRepo.Create(db, annonce); err != nil {
		thumbnail.Rollback(ctx)
		return nil, apperrors.InternalError(err)
	}
	thumbnail.Commit(ctx)

	logger.CtxInfo(ctx, "annonce created", "annonce_id", annonce.ID, "recruteur_id", recruteurID)
	return s.Get(db, annonce.ID)
}

// Update - изменение вакансии владельцем. Старая миниатюра удаляется только после коммита.
func (s *AnnonceServiceImpl) Update(db *gorm.DB, recruteurID, id string, req *dto.AnnonceRequest) (*models.Annonce, error) {
	ctx := ctxOf(db)

	annonce, err := s.ownedAnnonce(db, recruteurID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(db, req.CategorieID); err != nil {
		return nil, err
	}

	thumbnail := s.files.Attach(s.thumbnails, annonce.Thumbnail)
	switch {
	case req.Thumbnail != nil:
		if err := thumbnail.Replace(ctx, req.Thumbnail); err != nil {
			return nil, err
		}
	case req.RemoveThumbnail:
		thumbnail.Remove()
	}

	annonce.Title = strings.TrimSpace(req.Title)
	annonce.Description = req.Description
	annonce.CategorieID = req.CategorieID
	annonce.Thumbnail = thumbnail.Path()
	annonce.Categorie = nil
	annonce.Recruteur = nil

	tx := db.Begin()
	if tx.Error != nil {
		thumbnail.Rollback(ctx)
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.annonceRepo.Update(tx, annonce); err != nil {
		thumbnail.Rollback(ctx)
		if errors.Is(err, repositories.ErrAnnonceNotFound) {
			return nil, apperrors.ErrAnnonceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		thumbnail.Rollback(ctx)
		return nil, apperrors.InternalError(err)
	}
	thumbnail.Commit(ctx)

	return s.Get(db, annonce.ID)
}

// Delete удаляет вакансию, ее кандидатуры и все связанные файлы
func (s *AnnonceServiceImpl) Delete(db *gorm.DB, recruteurID, id string) error {
	annonce, err := s.ownedAnnonce(db, recruteurID, id)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	documents, err := s.candidatureRepo.DocumentsByAnnonce(tx, annonce.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.candidatureRepo.DeleteByAnnonce(tx, annonce.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.annonceRepo.Delete(tx, annonce.ID); err != nil {
		if errors.Is(err, repositories.ErrAnnonceNotFound) {
			return apperrors.ErrAnnonceNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	ctx := ctxOf(db)
	paths := documents
	if annonce.Thumbnail != nil {
		paths = append(paths, *annonce.Thumbnail)
	}
	s.files.DeleteFiles(ctx, paths...)

	logger.CtxInfo(ctx, "annonce deleted", "annonce_id", annonce.ID, "candidatures_files", len(documents))
	return nil
}

// ownedAnnonce загружает вакансию и проверяет, что она принадлежит рекрутеру
func (s *AnnonceServiceImpl) ownedAnnonce(db *gorm.DB, recruteurID, id string) (*models.Annonce, error) {
	annonce, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}
	if !annonce.IsOwnedBy(recruteurID) {
		return nil, apperrors.ErrNotAnnonceOwner
	}
	return annonce, nil
}

func (s *AnnonceServiceImpl) checkCategory(db *gorm.DB, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.FieldError("categorie_id", "The selected categorie id is invalid.")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
