package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByUser(db *gorm.DB, userID string, unreadOnly bool, page Pagination) ([]models.Notification, int64, error)
	MarkAsRead(db *gorm.DB, id, userID string, at time.Time) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUser(db *gorm.DB, userID string, unreadOnly bool, page Pagination) ([]models.Notification, int64, error) {
	var (
		notifications []models.Notification
		total         int64
	)

	query := db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := page.apply(query).Order("created_at DESC").Order("id ASC").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkAsRead помечает уведомление прочитанным; чужие уведомления считаются несуществующими
func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id, userID string, at time.Time) error {
	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.ReadAt != nil {
		return nil
	}
	return db.Model(&notification).Update("read_at", at).Error
}
