package handlers

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed ui/*.html
var uiPages embed.FS

// UIHandler serves the browser forms.
type UIHandler struct{}

// NewUIHandler creates a new UI handler
func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

// Upload handles GET /ui
func (h *UIHandler) Upload(c *gin.Context) { h.page(c, "ui/upload.html") }

// Async handles GET /ui_async
func (h *UIHandler) Async(c *gin.Context) { h.page(c, "ui/async.html") }

// YouTube handles GET /ui_youtube
func (h *UIHandler) YouTube(c *gin.Context) { h.page(c, "ui/youtube.html") }

func (h *UIHandler) page(c *gin.Context, name string) {
	body, err := uiPages.ReadFile(name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
