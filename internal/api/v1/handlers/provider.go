package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/middleware"
	"lucidscript/internal/api/v1/services"
)

// ProviderHandler exposes the transcriber registry.
type ProviderHandler struct {
	service services.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service services.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// List handles GET /api/v1/providers
//
// @Summary List transcription providers
// @Description Lists registered transcribers, the default one and their health
// @Tags providers
// @Produce json
// @Success 200 {object} dto.ListProvidersResponse "Providers"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /api/v1/providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	response, err := h.service.ListProviders(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
