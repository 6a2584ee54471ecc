package services

import (
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CandidatureService interface {
	// List - кандидатуры пользователя: свои для кандидата, на свои вакансии для рекрутера
	List(db *gorm.DB, actor Actor) (*dto.CandidatureListResponse, error)
	ListByAnnonce(db *gorm.DB, recruteurID, annonceID string) (*dto.CandidatureListResponse, error)
	Get(db *gorm.DB, actor Actor, id string) (*models.Candidature, error)
	Create(db *gorm.DB, candidatID string, req *dto.CreateCandidatureRequest) (*models.Candidature, error)
	Update(db *gorm.DB, candidatID, id string, req *dto.UpdateCandidatureRequest) (*models.Candidature, error)
	Delete(db *gorm.DB, candidatID, id string) error
	// UpdateStatus - решение владельца вакансии; уведомляет кандидата, если статус изменился
	UpdateStatus(db *gorm.DB, recruteurID, id string, req *dto.UpdateStatusRequest) (*models.Candidature, error)
}

type CandidatureServiceImpl struct {
	candidatureRepo repositories.CandidatureRepository
	annonceRepo     repositories.AnnonceRepository
	notifications   NotificationService
	files           *storage.Attachments
	documents       storage.AttachmentPolicy
}

func NewCandidatureService(
	candidatureRepo repositories.CandidatureRepository,
	annonceRepo repositories.AnnonceRepository,
	notifications NotificationService,
	files *storage.Attachments,
	documents storage.AttachmentPolicy,
) CandidatureService {
	return &CandidatureServiceImpl{
		candidatureRepo: candidatureRepo,
		annonceRepo:     annonceRepo,
		notifications:   notifications,
		files:           files,
		documents:       documents,
	}
}

func (s *CandidatureServiceImpl) List(db *gorm.DB, actor Actor) (*dto.CandidatureListResponse, error) {
	var (
		candidatures []models.Candidature
		err          error
	)

	switch actor.Role {
	case models.UserRoleCandidate:
		candidatures, err = s.candidatureRepo.FindByCandidat(db, actor.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	case models.UserRoleRecruiter:
		ids, err := s.annonceRepo.FindIDsByRecruiter(db, actor.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for _, annonceID := range ids {
			batch, err := s.candidatureRepo.FindByAnnonce(db, annonceID)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			candidatures = append(candidatures, batch...)
		}
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}

	return candidatureList(candidatures), nil
}

func (s *CandidatureServiceImpl) ListByAnnonce(db *gorm.DB, recruteurID, annonceID string) (*dto.CandidatureListResponse, error) {
	annonce, err := s.annonceRepo.FindByID(db, annonceID)
	if err != nil {
		if errors.Is(err, repositories.ErrAnnonceNotFound) {
			return nil, apperrors.ErrAnnonceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !annonce.IsOwnedBy(recruteurID) {
		return nil, apperrors.ErrNotAnnonceOwner
	}

	candidatures, err := s.candidatureRepo.FindByAnnonce(db, annonce.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return candidatureList(candidatures), nil
}

// Get доступен автору кандидатуры и владельцу вакансии
func (s *CandidatureServiceImpl) Get(db *gorm.DB, actor Actor, id string) (*models.Candidature, error) {
	candidature, err := s.find(db, id)
	if err != nil {
		return nil, err
	}

	if candidature.IsSubmittedBy(actor.UserID) {
		return candidature, nil
	}
	if actor.Is(models.UserRoleRecruiter) && candidature.Annonce != nil && candidature.Annonce.IsOwnedBy(actor.UserID) {
		return candidature, nil
	}
	return nil, apperrors.ErrCandidatureAccessDenied
}

// Create - подача кандидатуры. Статус всегда "En attente".
func (s *CandidatureServiceImpl) Create(db *gorm.DB, candidatID string, req *dto.CreateCandidatureRequest) (*models.Candidature, error) {
	ctx := ctxOf(db)

	if _, err := s.annonceRepo.FindByID(db, req.AnnonceID); err != nil {
		if errors.Is(err, repositories.ErrAnnonceNotFound) {
			return nil, apperrors.FieldError("annonce_id", "The selected annonce id is invalid.")
		}
		return nil, apperrors.InternalError(err)
	}

	document := s.files.Attach(s.documents, nil)
	if req.Document != nil {
		if err := document.Replace(ctx, req.Document); err != nil {
			return nil, err
		}
	}

	candidature := &models.Candidature{
		Objet:      req.Objet,
		Lettre:     req.Lettre,
		Document:   document.Path(),
		Statut:     models.CandidatureStatusPending,
		AnnonceID:  req.AnnonceID,
		CandidatID: candidatID,
	}
	if err := s.candidatureRepo.Create(db, candidature); err != nil {
		document.Rollback(ctx)
		return nil, apperrors.InternalError(err)
	}
	document.Commit(ctx)

	logger.CtxInfo(ctx, "candidature submitted", "candidature_id", candidature.ID, "annonce_id", candidature.AnnonceID)
	return s.find(db, candidature.ID)
}

// Update - изменение содержимого автором. Статус и вакансия не меняются.
func (s *CandidatureServiceImpl) Update(db *gorm.DB, candidatID, id string, req *dto.UpdateCandidatureRequest) (*models.Candidature, error) {
	ctx := ctxOf(db)

	candidature, err := s.submitted(db, candidatID, id)
	if err != nil {
		return nil, err
	}

	document := s.files.Attach(s.documents, candidature.Document)
	switch {
	case req.Document != nil:
		if err := document.Replace(ctx, req.Document); err != nil {
			return nil, err
		}
	case req.RemoveDocument:
		document.Remove()
	}

	if req.Objet != nil {
		candidature.Objet = *req.Objet
	}
	if req.Lettre != nil {
		candidature.Lettre = *req.Lettre
	}
	candidature.Document = document.Path()
	candidature.Annonce = nil
	candidature.Candidat = nil

	tx := db.Begin()
	if tx.Error != nil {
		document.Rollback(ctx)
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.candidatureRepo.UpdateContent(tx, candidature); err != nil {
		document.Rollback(ctx)
		if errors.Is(err, repositories.ErrCandidatureNotFound) {
			return nil, apperrors.ErrCandidatureNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		document.Rollback(ctx)
		return nil, apperrors.InternalError(err)
	}
	document.Commit(ctx)

	return s.find(db, candidature.ID)
}

func (s *CandidatureServiceImpl) Delete(db *gorm.DB, candidatID, id string) error {
	candidature, err := s.submitted(db, candidatID, id)
	if err != nil {
		return err
	}

	if err := s.candidatureRepo.Delete(db, candidature.ID); err != nil {
		if errors.Is(err, repositories.ErrCandidatureNotFound) {
			return apperrors.ErrCandidatureNotFound
		}
		return apperrors.InternalError(err)
	}

	if candidature.Document != nil {
		s.files.DeleteFiles(ctxOf(db), *candidature.Document)
	}
	return nil
}

func (s *CandidatureServiceImpl) UpdateStatus(db *gorm.DB, recruteurID, id string, req *dto.UpdateStatusRequest) (*models.Candidature, error) {
	candidature, err := s.find(db, id)
	if err != nil {
		return nil, err
	}
	if candidature.Annonce == nil || !candidature.Annonce.IsOwnedBy(recruteurID) {
		return nil, apperrors.ErrNotAnnonceOwner
	}

	// Тот же статус: ни записи, ни уведомления
	if candidature.Statut == req.Statut {
		return candidature, nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.candidatureRepo.UpdateStatus(tx, candidature.ID, req.Statut); err != nil {
		if errors.Is(err, repositories.ErrCandidatureNotFound) {
			return nil, apperrors.ErrCandidatureNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.notifications.RecordStatusChange(tx, candidature, req.Statut); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	previous := candidature.Statut
	candidature.Statut = req.Statut

	ctx := ctxOf(db)
	s.notifications.SendStatusEmail(ctx, candidature, req.Statut)
	logger.CtxInfo(ctx, "candidature status changed",
		"candidature_id", candidature.ID, "from", previous, "to", req.Statut)

	return candidature, nil
}

func (s *CandidatureServiceImpl) find(db *gorm.DB, id string) (*models.Candidature, error) {
	candidature, err := s.candidatureRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidatureNotFound) {
			return nil, apperrors.ErrCandidatureNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return candidature, nil
}

// submitted загружает кандидатуру и проверяет авторство
func (s *CandidatureServiceImpl) submitted(db *gorm.DB, candidatID, id string) (*models.Candidature, error) {
	candidature, err := s.find(db, id)
	if err != nil {
		return nil, err
	}
	if !candidature.IsSubmittedBy(candidatID) {
		return nil, apperrors.ErrCandidatureAccessDenied
	}
	return candidature, nil
}

func candidatureList(candidatures []models.Candidature) *dto.CandidatureListResponse {
	if candidatures == nil {
		candidatures = []models.Candidature{}
	}
	return &dto.CandidatureListResponse{
		Candidatures: candidatures,
		Total:        len(candidatures),
	}
}
