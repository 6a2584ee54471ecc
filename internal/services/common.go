package services

import (
	"context"
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Actor - аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	UserID string
	Role   models.UserRole
}

func (a Actor) Is(role models.UserRole) bool {
	return a.Role == role
}

// MailQueue - очередь фоновой отправки писем (workers.MailDispatcher)
type MailQueue interface {
	Enqueue(msg *email.Email) bool
}

// ctxOf достает context запроса, привязанный к *gorm.DB через WithContext
func ctxOf(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

type clock func() time.Time
