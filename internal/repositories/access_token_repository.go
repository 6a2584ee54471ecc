package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAccessTokenNotFound = errors.New("access token not found")

type AccessTokenRepository interface {
	Create(db *gorm.DB, token *models.AccessToken) error
	FindByID(db *gorm.DB, id string) (*models.AccessToken, error)
	Delete(db *gorm.DB, id string) error
	DeleteByUser(db *gorm.DB, userID string) error
	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
}

type AccessTokenRepositoryImpl struct{}

func NewAccessTokenRepository() AccessTokenRepository {
	return &AccessTokenRepositoryImpl{}
}

func (r *AccessTokenRepositoryImpl) Create(db *gorm.DB, token *models.AccessToken) error {
	return db.Create(token).Error
}

func (r *AccessTokenRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := db.First(&token, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *AccessTokenRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.AccessToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccessTokenNotFound
	}
	return nil
}

func (r *AccessTokenRepositoryImpl) DeleteByUser(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}

func (r *AccessTokenRepositoryImpl) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at < ?", now).Delete(&models.AccessToken{})
	return result.RowsAffected, result.Error
}
