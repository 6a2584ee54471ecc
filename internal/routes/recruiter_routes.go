package routes

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRecruiterRoutes(r *gin.RouterGroup, h *handlers.AppHandlers) {
	annonces := r.Group("/annonces", middleware.RequirePermission(auth.PermAnnoncesWrite))
	{
		annonces.POST("", h.AnnonceHandler.Create)
		annonces.PUT("/:id", h.AnnonceHandler.Update)
		annonces.DELETE("/:id", h.AnnonceHandler.Delete)
	}
	r.GET("/mes-annonces", middleware.RequirePermission(auth.PermAnnoncesWrite), h.AnnonceHandler.Mine)

	review := r.Group("/candidatures", middleware.RequirePermission(auth.PermCandidaturesReview))
	{
		review.PUT("/:id/statut", h.CandidatureHandler.UpdateStatus)
		review.GET("/annonce/:id", h.CandidatureHandler.ListByAnnonce)
	}

	r.GET("/stats/recruteur", middleware.RequirePermission(auth.PermStatsRecruiter), h.StatisticsHandler.Recruiter)
}
