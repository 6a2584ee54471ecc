package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCandidatureNotFound = errors.New("candidature not found")

type CandidatureRepository interface {
	Create(db *gorm.DB, candidature *models.Candidature) error
	FindByID(db *gorm.DB, id string) (*models.Candidature, error)
	FindByCandidat(db *gorm.DB, candidatID string) ([]models.Candidature, error)
	FindByAnnonce(db *gorm.DB, annonceID string) ([]models.Candidature, error)
	UpdateContent(db *gorm.DB, candidature *models.Candidature) error
	UpdateStatus(db *gorm.DB, id string, status models.CandidatureStatus) error
	Delete(db *gorm.DB, id string) error
	DeleteByAnnonce(db *gorm.DB, annonceID string) error
	DocumentsByAnnonce(db *gorm.DB, annonceID string) ([]string, error)
	DocumentsByUser(db *gorm.DB, userID string) ([]string, error)
}

type CandidatureRepositoryImpl struct{}

func NewCandidatureRepository() CandidatureRepository {
	return &CandidatureRepositoryImpl{}
}

func (r *CandidatureRepositoryImpl) Create(db *gorm.DB, candidature *models.Candidature) error {
	return db.Omit("Annonce", "Candidat").Create(candidature).Error
}

func (r *CandidatureRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Candidature, error) {
	var candidature models.Candidature
	err := db.Preload("Annonce").Preload("Candidat", publicUser).
		First(&candidature, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidatureNotFound
		}
		return nil, err
	}
	return &candidature, nil
}

func (r *CandidatureRepositoryImpl) FindByCandidat(db *gorm.DB, candidatID string) ([]models.Candidature, error) {
	var candidatures []models.Candidature
	err := db.Preload("Annonce").
		Where("candidat_id = ?", candidatID).
		Order("created_at DESC").Order("id ASC").
		Find(&candidatures).Error
	return candidatures, err
}

func (r *CandidatureRepositoryImpl) FindByAnnonce(db *gorm.DB, annonceID string) ([]models.Candidature, error) {
	var candidatures []models.Candidature
	err := db.Preload("Candidat", publicUser).
		Where("annonce_id = ?", annonceID).
		Order("created_at DESC").Order("id ASC").
		Find(&candidatures).Error
	return candidatures, err
}

// UpdateContent обновляет только поля, доступные кандидату. Статус не затрагивается.
func (r *CandidatureRepositoryImpl) UpdateContent(db *gorm.DB, candidature *models.Candidature) error {
	result := db.Model(candidature).
		Select("objet", "lettre", "document", "updated_at").
		Updates(candidature)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidatureNotFound
	}
	return nil
}

func (r *CandidatureRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.CandidatureStatus) error {
	result := db.Model(&models.Candidature{}).Where("id = ?", id).Update("statut", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidatureNotFound
	}
	return nil
}

func (r *CandidatureRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Candidature{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidatureNotFound
	}
	return nil
}

func (r *CandidatureRepositoryImpl) DeleteByAnnonce(db *gorm.DB, annonceID string) error {
	return db.Where("annonce_id = ?", annonceID).Delete(&models.Candidature{}).Error
}

func (r *CandidatureRepositoryImpl) DocumentsByAnnonce(db *gorm.DB, annonceID string) ([]string, error) {
	var paths []string
	err := db.Model(&models.Candidature{}).
		Where("annonce_id = ? AND document IS NOT NULL AND document <> ''", annonceID).
		Pluck("document", &paths).Error
	return paths, err
}

// DocumentsByUser - документы кандидатур пользователя и кандидатур на его вакансии
func (r *CandidatureRepositoryImpl) DocumentsByUser(db *gorm.DB, userID string) ([]string, error) {
	var paths []string
	sub := db.Model(&models.Annonce{}).Select("id").Where("recruteur_id = ?", userID)
	err := db.Model(&models.Candidature{}).
		Where("document IS NOT NULL AND document <> ''").
		Where(db.Where("candidat_id = ?", userID).Or("annonce_id IN (?)", sub)).
		Pluck("document", &paths).Error
	return paths, err
}
