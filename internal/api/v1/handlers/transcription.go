package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/middleware"
	"lucidscript/internal/api/v1/dto"
	"lucidscript/internal/api/v1/services"
)

// TranscriptionHandler handles plain transcription and text formatting.
type TranscriptionHandler struct {
	service services.ExportService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.ExportService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe an audio file
// @Description Returns the plain transcript of an uploaded audio or video file
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio or video file"
// @Success 200 {object} dto.TranscribeResponse "Transcript"
// @Failure 413 {object} errors.APIError "Upload too large"
// @Failure 422 {object} errors.APIError "File missing"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	file, err := middleware.RequireFormFile(c, "file")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FormatDocx handles POST /format_docx
//
// @Summary Format text as a document
// @Description Splits raw text into sentence paragraphs and writes a standard .docx
// @Tags transcription
// @Accept json
// @Produce json
// @Param request body dto.FormatDocxRequest true "Raw text"
// @Success 200 {object} dto.FormatDocxResponse "Document path"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /format_docx [post]
func (h *TranscriptionHandler) FormatDocx(c *gin.Context) {
	var req dto.FormatDocxRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.FormatDocx(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
