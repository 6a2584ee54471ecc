package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CandidatureHandler struct {
	*BaseHandler
	candidatureService services.CandidatureService
}

func NewCandidatureHandler(base *BaseHandler, candidatureService services.CandidatureService) *CandidatureHandler {
	return &CandidatureHandler{
		BaseHandler:        base,
		candidatureService: candidatureService,
	}
}

// List godoc
// @Summary Кандидатуры пользователя
// @Description Кандидат видит свои кандидатуры, рекрутер - кандидатуры на свои вакансии
// @Tags candidatures
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CandidatureListResponse
// @Router /candidatures [get]
func (h *CandidatureHandler) List(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	response, err := h.candidatureService.List(h.GetDB(c), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListByAnnonce godoc
// @Summary Кандидатуры на вакансию
// @Tags candidatures
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 200 {object} dto.CandidatureListResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /candidatures/annonce/{id} [get]
func (h *CandidatureHandler) ListByAnnonce(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.candidatureService.ListByAnnonce(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CandidatureHandler) Get(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	candidature, err := h.candidatureService.Get(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidature)
}

// Create godoc
// @Summary Подать кандидатуру
// @Description Статус новой кандидатуры всегда "En attente"
// @Tags candidatures
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param objet formData string true "Тема"
// @Param lettre formData string true "Сопроводительное письмо"
// @Param annonce_id formData string true "ID вакансии"
// @Param document formData file false "CV (pdf, doc, docx до 5MB)"
// @Success 201 {object} models.Candidature
// @Failure 422 {object} apperrors.ErrorResponse
// @Router /candidatures [post]
func (h *CandidatureHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCandidatureRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	candidature, err := h.candidatureService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidature)
}

func (h *CandidatureHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCandidatureRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	candidature, err := h.candidatureService.Update(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidature)
}

func (h *CandidatureHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.candidatureService.Delete(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Status:  "success",
		Message: "Candidature deleted successfully",
	})
}

// UpdateStatus godoc
// @Summary Изменить статус кандидатуры
// @Description Только владелец вакансии. Кандидат получает уведомление, если статус изменился.
// @Tags candidatures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID кандидатуры"
// @Param request body dto.UpdateStatusRequest true "Новый статус"
// @Success 200 {object} models.Candidature
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 422 {object} apperrors.ErrorResponse
// @Router /candidatures/{id}/statut [put]
func (h *CandidatureHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	candidature, err := h.candidatureService.UpdateStatus(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidature)
}
