package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты API v1.
// authMiddleware проверяет bearer-токен и кладет пользователя в контекст.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)

	api := ginRouter.Group("/api/v1")
	{
		api.GET("/health", appHandlers.HealthHandler.Health)

		SetupPublicRoutes(api, appHandlers)

		authenticated := api.Group("", authMiddleware)
		SetupCommonRoutes(authenticated, appHandlers)
		SetupRecruiterRoutes(authenticated, appHandlers)
		SetupCandidateRoutes(authenticated, appHandlers)
		SetupAdminRoutes(authenticated, appHandlers)
	}

	logger.Info("HTTP routes registered", "prefix", "/api/v1")
}
