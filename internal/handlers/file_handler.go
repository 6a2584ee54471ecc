package handlers

import (
	"bufio"
	"errors"
	"io"
	"net/http"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// sniffLen - сколько байт mimetype читает для определения типа
const sniffLen = 3072

// FileHandler отдает сохраненные миниатюры и документы
type FileHandler struct {
	*BaseHandler
	files *storage.Attachments
}

func NewFileHandler(base *BaseHandler, files *storage.Attachments) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		files:       files,
	}
}

// ServeFile godoc
// @Summary Файл из хранилища
// @Tags files
// @Produce octet-stream
// @Param path path string true "Путь файла (thumbnails/..., documents/...)"
// @Success 200 {file} file
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /files/{path} [get]
func (h *FileHandler) ServeFile(c *gin.Context) {
	ctx := c.Request.Context()
	path := strings.TrimPrefix(c.Param("path"), "/")

	rc, err := h.files.Open(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			apperrors.HandleError(c, apperrors.NewNotFoundError("file", "File not found"))
			return
		}
		logger.CtxWithError(ctx, "failed to open stored file", err, "path", path)
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer rc.Close()

	reader := bufio.NewReaderSize(rc, sniffLen)
	head, err := reader.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, -1, mimetype.Detect(head).String(), reader, nil)
}
