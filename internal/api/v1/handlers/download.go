package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/middleware"
	"lucidscript/internal/api/v1/services"
)

// DocxContentType is the media type of generated documents.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DownloadHandler serves generated documents.
type DownloadHandler struct {
	service services.DownloadService
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(service services.DownloadService) *DownloadHandler {
	return &DownloadHandler{service: service}
}

// Download handles GET /download/:filename
//
// @Summary Download a generated document
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param filename path string true "Bare document filename"
// @Success 200 {file} file "Document"
// @Failure 400 {object} errors.APIError "Invalid filename"
// @Failure 404 {object} errors.APIError "File not found"
// @Router /download/{filename} [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	rc, size, err := h.service.Open(c.Request.Context(), filename)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, size, DocxContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	})
}
