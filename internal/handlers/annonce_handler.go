package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnnonceHandler struct {
	*BaseHandler
	annonceService services.AnnonceService
}

func NewAnnonceHandler(base *BaseHandler, annonceService services.AnnonceService) *AnnonceHandler {
	return &AnnonceHandler{
		BaseHandler:    base,
		annonceService: annonceService,
	}
}

// List godoc
// @Summary Список вакансий
// @Description Публичный список с категорией и рекрутером, фильтр по категории и пагинация
// @Tags annonces
// @Produce json
// @Param categorie_id query string false "ID категории"
// @Param page query int false "Страница"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} dto.AnnonceListResponse
// @Router /annonces [get]
func (h *AnnonceHandler) List(c *gin.Context) {
	var query dto.AnnonceListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.annonceService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary Вакансия по ID
// @Tags annonces
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} models.Annonce
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /annonces/{id} [get]
func (h *AnnonceHandler) Get(c *gin.Context) {
	annonce, err := h.annonceService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, annonce)
}

// Mine godoc
// @Summary Мои вакансии
// @Tags annonces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnnonceListResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /mes-annonces [get]
func (h *AnnonceHandler) Mine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.AnnonceListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.annonceService.ListByRecruiter(h.GetDB(c), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Опубликовать вакансию
// @Tags annonces
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param description formData string true "Описание"
// @Param categorie_id formData string true "ID категории"
// @Param thumbnail formData file false "Изображение (до 2MB)"
// @Success 201 {object} models.Annonce
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 422 {object} apperrors.ErrorResponse
// @Router /annonces [post]
func (h *AnnonceHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AnnonceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	annonce, err := h.annonceService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, annonce)
}

// Update godoc
// @Summary Изменить вакансию
// @Description Только владелец. Для файлов: POST с полем _method=PUT.
// @Tags annonces
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Param title formData string true "Заголовок"
// @Param description formData string true "Описание"
// @Param categorie_id formData string true "ID категории"
// @Param thumbnail formData file false "Новое изображение"
// @Param remove_thumbnail formData bool false "Удалить изображение"
// @Success 200 {object} models.Annonce
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /annonces/{id} [put]
func (h *AnnonceHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AnnonceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	annonce, err := h.annonceService.Update(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, annonce)
}

// Delete godoc
// @Summary Удалить вакансию
// @Description Удаляет вакансию, ее кандидатуры и файлы. Только владелец.
// @Tags annonces
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /annonces/{id} [delete]
func (h *AnnonceHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.annonceService.Delete(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Status:  "success",
		Message: "Annonce deleted successfully",
	})
}
