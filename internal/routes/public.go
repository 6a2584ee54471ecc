package routes

import (
	"jobboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPublicRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	api.POST("/register", h.AuthHandler.Register)
	api.POST("/login", h.AuthHandler.Login)
	api.POST("/forgot-password", h.AuthHandler.ForgotPassword)
	api.POST("/reset-password", h.AuthHandler.ResetPassword)

	api.GET("/categories", h.CategoryHandler.List)
	api.GET("/categories/:id", h.CategoryHandler.Get)

	api.GET("/annonces", h.AnnonceHandler.List)
	api.GET("/annonces/:id", h.AnnonceHandler.Get)

	api.GET("/files/*path", h.FileHandler.ServeFile)
}
