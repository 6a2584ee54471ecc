package routes

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCandidateRoutes(r *gin.RouterGroup, h *handlers.AppHandlers) {
	candidatures := r.Group("/candidatures", middleware.RequirePermission(auth.PermCandidaturesWrite))
	{
		candidatures.POST("", h.CandidatureHandler.Create)
		candidatures.PUT("/:id", h.CandidatureHandler.Update)
		candidatures.DELETE("/:id", h.CandidatureHandler.Delete)
	}
}
