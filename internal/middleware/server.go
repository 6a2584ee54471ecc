package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const requestIDHeader = "X-Request-ID"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("HTTP Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			log.Warn("HTTP Client Error", fields...)
		} else {
			log.Info("HTTP Request", fields...)
		}
	}
}

// DBMiddleware кладет в gin.Context *gorm.DB, привязанный к context запроса.
// Если в context уже есть транзакция (тесты), используется она.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbKey := string(contextkeys.DBContextKey)
		tx, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)

		if ok && tx != nil {
			c.Set(dbKey, tx)
		} else {
			c.Set(dbKey, db)
		}

		c.Next()
	}
}

func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// MethodOverride позволяет HTML-формам отправлять PUT/PATCH/DELETE через POST
// с полем "_method" (multipart или urlencoded) или заголовком X-HTTP-Method-Override.
// Оборачивает весь engine: gin выбирает маршрут до запуска middleware.
func MethodOverride(next http.Handler, maxBodySize int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maxBodySize > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		}

		if r.Method == http.MethodPost {
			if method := overrideMethod(r, maxBodySize); method != "" {
				r.Method = method
			}
		}

		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request, maxMemory int64) string {
	method := r.Header.Get("X-HTTP-Method-Override")

	if method == "" {
		contentType := r.Header.Get("Content-Type")
		switch {
		case strings.HasPrefix(contentType, "multipart/form-data"):
			if err := r.ParseMultipartForm(maxMemory); err == nil {
				method = r.PostFormValue("_method")
			}
		case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
			if err := r.ParseForm(); err == nil {
				method = r.PostFormValue("_method")
			}
		}
	}

	switch method = strings.ToUpper(strings.TrimSpace(method)); method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return method
	default:
		return ""
	}
}
