package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAnnonceNotFound = errors.New("annonce not found")

// AnnonceCriteria - фильтры списка вакансий
type AnnonceCriteria struct {
	CategorieID string
	RecruteurID string
	Pagination
}

type AnnonceRepository interface {
	Create(db *gorm.DB, annonce *models.Annonce) error
	FindByID(db *gorm.DB, id string) (*models.Annonce, error)
	List(db *gorm.DB, criteria AnnonceCriteria) ([]models.Annonce, int64, error)
	FindIDsByRecruiter(db *gorm.DB, recruteurID string) ([]string, error)
	Update(db *gorm.DB, annonce *models.Annonce) error
	Delete(db *gorm.DB, id string) error
	ThumbnailsByRecruiter(db *gorm.DB, recruteurID string) ([]string, error)
}

type AnnonceRepositoryImpl struct{}

func NewAnnonceRepository() AnnonceRepository {
	return &AnnonceRepositoryImpl{}
}

// publicUser ограничивает поля владельца, отдаваемые в ответах
func publicUser(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role", "created_at", "updated_at")
}

func (r *AnnonceRepositoryImpl) Create(db *gorm.DB, annonce *models.Annonce) error {
	return db.Omit("Categorie", "Recruteur", "Candidatures").Create(annonce).Error
}

func (r *AnnonceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Annonce, error) {
	var annonce models.Annonce
	err := db.Preload("Categorie").Preload("Recruteur", publicUser).
		First(&annonce, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnonceNotFound
		}
		return nil, err
	}
	return &annonce, nil
}

func (r *AnnonceRepositoryImpl) List(db *gorm.DB, criteria AnnonceCriteria) ([]models.Annonce, int64, error) {
	var (
		annonces []models.Annonce
		total    int64
	)

	query := db.Model(&models.Annonce{})
	if criteria.CategorieID != "" {
		query = query.Where("categorie_id = ?", criteria.CategorieID)
	}
	if criteria.RecruteurID != "" {
		query = query.Where("recruteur_id = ?", criteria.RecruteurID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := criteria.apply(query).
		Preload("Categorie").Preload("Recruteur", publicUser).
		Order("created_at DESC").Order("id ASC").
		Find(&annonces).Error
	if err != nil {
		return nil, 0, err
	}
	return annonces, total, nil
}

func (r *AnnonceRepositoryImpl) FindIDsByRecruiter(db *gorm.DB, recruteurID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Annonce{}).
		Where("recruteur_id = ?", recruteurID).
		Order("created_at ASC").Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// Update сохраняет редактируемые поля; владелец и id не меняются
func (r *AnnonceRepositoryImpl) Update(db *gorm.DB, annonce *models.Annonce) error {
	result := db.Model(annonce).
		Select("title", "description", "thumbnail", "categorie_id", "updated_at").
		Updates(annonce)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnnonceNotFound
	}
	return nil
}

func (r *AnnonceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Annonce{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnnonceNotFound
	}
	return nil
}

func (r *AnnonceRepositoryImpl) ThumbnailsByRecruiter(db *gorm.DB, recruteurID string) ([]string, error) {
	var paths []string
	err := db.Model(&models.Annonce{}).
		Where("recruteur_id = ? AND thumbnail IS NOT NULL AND thumbnail <> ''", recruteurID).
		Pluck("thumbnail", &paths).Error
	return paths, err
}
