package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/v1/dto"
)

// RootMessage is reported by GET /.
const RootMessage = "LucidScript backend is up"

// SystemHandler answers liveness probes.
type SystemHandler struct {
	now func() time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{now: time.Now}
}

// Root handles GET /
//
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{OK: true, Msg: RootMessage})
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Timestamp: h.now().Unix()})
}
