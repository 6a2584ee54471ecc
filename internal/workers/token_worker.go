package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"

	"gorm.io/gorm"
)

const tokenWorkerName = "token_cleanup"

// TokenCleanupWorker периодически удаляет истекшие access-токены и токены сброса пароля
type TokenCleanupWorker struct {
	db       *gorm.DB
	tokens   repositories.AccessTokenRepository
	resets   repositories.PasswordResetRepository
	interval time.Duration
	resetTTL time.Duration
}

func NewTokenCleanupWorker(
	db *gorm.DB,
	tokens repositories.AccessTokenRepository,
	resets repositories.PasswordResetRepository,
	interval, resetTTL time.Duration,
) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		db:       db,
		tokens:   tokens,
		resets:   resets,
		interval: interval,
		resetTTL: resetTTL,
	}
}

// Start запускает фоновую очистку
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *TokenCleanupWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case now := <-ticker.C:
			w.RunOnce(ctx, now)
		}
	}
}

// RunOnce выполняет один проход очистки
func (w *TokenCleanupWorker) RunOnce(ctx context.Context, now time.Time) {
	db := w.db.WithContext(ctx)

	removed, err := w.tokens.DeleteExpired(db, now)
	logger.WorkerLog(tokenWorkerName, "delete_expired_tokens", err, "removed", removed)

	removed, err = w.resets.DeleteOlderThan(db, now.Add(-w.resetTTL))
	logger.WorkerLog(tokenWorkerName, "delete_expired_resets", err, "removed", removed)
}
