package routes

import (
	"github.com/gin-gonic/gin"

	"lucidscript/internal/api/middleware"
	"lucidscript/internal/api/v1/handlers"
	"lucidscript/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ExportService   services.ExportService
	DownloadService services.DownloadService
	HistoryService  services.HistoryService
	ProviderService services.ProviderService

	// MaxUploadBytes caps upload bodies. Zero means unlimited.
	MaxUploadBytes int64
}

// RegisterRoutes registers the browser, document and history routes on root.
func RegisterRoutes(root *gin.RouterGroup, container *ServiceContainer) {
	system := handlers.NewSystemHandler()
	root.GET("/", system.Root)
	root.GET("/health", system.Health)

	ui := handlers.NewUIHandler()
	root.GET("/ui", ui.Upload)
	root.GET("/ui_async", ui.Async)
	root.GET("/ui_youtube", ui.YouTube)

	upload := middleware.BodyLimit(container.MaxUploadBytes)

	if container.ExportService != nil {
		transcription := handlers.NewTranscriptionHandler(container.ExportService)
		root.POST("/transcribe", upload, transcription.Transcribe)
		root.POST("/format_docx", transcription.FormatDocx)

		export := handlers.NewExportHandler(container.ExportService)
		root.POST("/export_docx_from_audio_v2", upload, export.Standard)
		root.POST("/export_docx_from_audio_v3", upload, export.Deposition)
	}

	if container.DownloadService != nil {
		download := handlers.NewDownloadHandler(container.DownloadService)
		root.GET("/download/:filename", download.Download)
	}

	if container.HistoryService != nil {
		history := handlers.NewHistoryHandler(container.HistoryService)
		exports := root.Group("/api/v1/exports")
		{
			exports.GET("", history.List)
			exports.GET("/:id", history.Get)
		}
	}

	if container.ProviderService != nil {
		providers := handlers.NewProviderHandler(container.ProviderService)
		root.GET("/api/v1/providers", providers.List)
	}
}
