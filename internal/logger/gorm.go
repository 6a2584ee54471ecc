package logger

import (
	"fmt"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// gormWriter перенаправляет вывод gorm в slog
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	GetLogger().Warn("gorm", "message", fmt.Sprintf(format, args...))
}

// NewGormLogger возвращает логгер gorm, пишущий через slog.
// Логируются только медленные запросы и ошибки.
func NewGormLogger(slowThreshold time.Duration) gormlogger.Interface {
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
