package routes

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCommonRoutes - маршруты для любого аутентифицированного пользователя
func SetupCommonRoutes(r *gin.RouterGroup, h *handlers.AppHandlers) {
	r.POST("/logout", h.AuthHandler.Logout)
	r.POST("/refresh", h.AuthHandler.Refresh)
	r.GET("/user", h.AuthHandler.Me)
	r.PUT("/user", h.AuthHandler.UpdateProfile)

	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.NotificationHandler.List)
		notifications.PUT("/:id/read", h.NotificationHandler.MarkAsRead)
	}

	// Кандидат и рекрутер, доступ к конкретной записи проверяет сервис
	candidatures := r.Group("/candidatures", middleware.RequirePermission(auth.PermCandidaturesRead))
	{
		candidatures.GET("", h.CandidatureHandler.List)
		candidatures.GET("/:id", h.CandidatureHandler.Get)
	}
}
