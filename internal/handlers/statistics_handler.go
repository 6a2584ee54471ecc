package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	*BaseHandler
	statisticsService services.StatisticsService
}

func NewStatisticsHandler(base *BaseHandler, statisticsService services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		BaseHandler:       base,
		statisticsService: statisticsService,
	}
}

// Recruiter godoc
// @Summary Статистика рекрутера
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.RecruiterStats
// @Router /stats/recruteur [get]
func (h *StatisticsHandler) Recruiter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.statisticsService.RecruiterStats(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Global godoc
// @Summary Статистика платформы
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GlobalStats
// @Router /stats/global [get]
func (h *StatisticsHandler) Global(c *gin.Context) {
	stats, err := h.statisticsService.GlobalStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
