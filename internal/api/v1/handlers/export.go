package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/middleware"
	"lucidscript/internal/api/v1/dto"
	"lucidscript/internal/api/v1/services"
)

// ExportHandler turns audio into Word documents.
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Standard handles POST /export_docx_from_audio_v2
//
// @Summary Export a standard document
// @Description Transcribes an upload or YouTube URL and writes a paragraph document. The URL wins when both are given.
// @Tags export
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Audio or video file"
// @Param language formData string false "Language code, auto-detected when empty"
// @Param translate formData string false "\"true\" to translate to English"
// @Param youtube_url formData string false "YouTube URL"
// @Success 200 {object} dto.ExportResponse "Document created"
// @Failure 400 {object} errors.APIError "No input or empty transcript"
// @Failure 413 {object} errors.APIError "Upload too large"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Router /export_docx_from_audio_v2 [post]
func (h *ExportHandler) Standard(c *gin.Context) {
	var form dto.ExportForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ExportStandard(c.Request.Context(), &form)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Deposition handles POST /export_docx_from_audio_v3
//
// @Summary Export a deposition transcript
// @Description Like v2, but renders speaker headed segments with timestamps and page breaks
// @Tags export
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Audio or video file"
// @Param language formData string false "Language code, auto-detected when empty"
// @Param translate formData string false "\"true\" to translate to English"
// @Param youtube_url formData string false "YouTube URL"
// @Param diarize formData string false "\"true\" to detect speakers"
// @Success 200 {object} dto.ExportResponse "Document created"
// @Failure 400 {object} errors.APIError "No input or empty transcript"
// @Failure 413 {object} errors.APIError "Upload too large"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Router /export_docx_from_audio_v3 [post]
func (h *ExportHandler) Deposition(c *gin.Context) {
	var form dto.ExportForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ExportDeposition(c.Request.Context(), &form)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
