package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(r *gin.RouterGroup, h *handlers.AppHandlers) {
	admin := r.Group("", middleware.RequireRoles(models.UserRoleAdmin))
	{
		// Категории
		admin.POST("/categories", h.CategoryHandler.Create)
		admin.PUT("/categories/:id", h.CategoryHandler.Update)
		admin.DELETE("/categories/:id", h.CategoryHandler.Delete)

		// Пользователи
		admin.GET("/users", h.UserHandler.ListUsers)
		admin.GET("/users/:id", h.UserHandler.GetUser)
		admin.DELETE("/users/:id", h.UserHandler.DeleteUser)

		admin.GET("/stats/global", h.StatisticsHandler.Global)
	}
}
