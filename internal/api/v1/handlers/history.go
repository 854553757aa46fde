package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/errors"
	"lucidscript/internal/api/middleware"
	"lucidscript/internal/api/v1/dto"
	"lucidscript/internal/api/v1/services"
)

// HistoryHandler exposes export history.
type HistoryHandler struct {
	service services.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service services.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// List handles GET /api/v1/exports
//
// @Summary List exports
// @Description Returns the most recent exports first
// @Tags history
// @Produce json
// @Param limit query int false "Maximum records" minimum(1) maximum(100) default(20)
// @Success 200 {object} dto.ListExportsResponse "Export history"
// @Failure 400 {object} errors.APIError "Invalid query"
// @Failure 422 {object} errors.APIError "Limit out of range"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /api/v1/exports [get]
func (h *HistoryHandler) List(c *gin.Context) {
	var query dto.ListExportsQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListExports(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/exports/:id
//
// @Summary Get one export
// @Tags history
// @Produce json
// @Param id path int true "Export ID" minimum(1)
// @Success 200 {object} dto.ExportRecordResponse "Export"
// @Failure 400 {object} errors.APIError "Invalid ID"
// @Failure 404 {object} errors.APIError "Export not found"
// @Router /api/v1/exports/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid export ID"))
		return
	}

	response, err := h.service.GetExport(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
