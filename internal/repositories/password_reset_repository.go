package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPasswordResetNotFound = errors.New("password reset not found")

type PasswordResetRepository interface {
	// Save заменяет предыдущий токен для этого email
	Save(db *gorm.DB, reset *models.PasswordReset) error
	FindByEmail(db *gorm.DB, email string) (*models.PasswordReset, error)
	DeleteByEmail(db *gorm.DB, email string) error
	DeleteOlderThan(db *gorm.DB, before time.Time) (int64, error)
}

type PasswordResetRepositoryImpl struct{}

func NewPasswordResetRepository() PasswordResetRepository {
	return &PasswordResetRepositoryImpl{}
}

func (r *PasswordResetRepositoryImpl) Save(db *gorm.DB, reset *models.PasswordReset) error {
	reset.Email = normalizeEmail(reset.Email)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", reset.Email).Delete(&models.PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Create(reset).Error
	})
}

func (r *PasswordResetRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := db.Where("email = ?", normalizeEmail(email)).First(&reset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPasswordResetNotFound
		}
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepositoryImpl) DeleteByEmail(db *gorm.DB, email string) error {
	return db.Where("email = ?", normalizeEmail(email)).Delete(&models.PasswordReset{}).Error
}

func (r *PasswordResetRepositoryImpl) DeleteOlderThan(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("created_at < ?", before).Delete(&models.PasswordReset{})
	return result.RowsAffected, result.Error
}
