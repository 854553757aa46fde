package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lucidscript/cmd/lucidscript/cmd/cmdutil"
	"lucidscript/internal/api/server"
	"lucidscript/internal/api/v1/routes"
	"lucidscript/internal/api/v1/services"
	"lucidscript/internal/app"
	"lucidscript/internal/config"
)

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (default $HOST or 0.0.0.0)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 8000)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server with the browser UI, the document endpoints, export
history, Prometheus metrics on /metrics and API docs on /docs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, cleanup, err := cmdutil.InitApp(ctx, func(s *config.Settings) {
			if host != "" {
				s.Server.Host = host
			}
			if port != "" {
				s.Server.Port = port
			}
		})
		if err != nil {
			return err
		}
		defer cleanup()

		return Run(ctx, a)
	},
}

// Run serves a until ctx is done.
func Run(ctx context.Context, a *app.App) error {
	s := a.Settings
	container := NewContainer(a)
	srv := server.NewServer(server.Config{
		Host:         s.Server.Host,
		Port:         s.Server.Port,
		ReadTimeout:  s.Server.ReadTimeout,
		WriteTimeout: s.Server.WriteTimeout,
		IdleTimeout:  s.Server.IdleTimeout,
		Environment:  s.Server.Environment,
	}, container, a.Metrics, a.Logger)

	a.Logger.Info("LucidScript configured",
		zap.String("output_dir", s.Pipeline.OutputDir),
		zap.String("transcriber", a.Registry.DefaultName()),
		zap.Int("max_concurrent_jobs", s.Pipeline.MaxConcurrentJobs),
	)
	return srv.Run(ctx, 30*time.Second)
}

// NewContainer builds the HTTP services of a.
func NewContainer(a *app.App) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		ExportService:   services.NewExportService(a.Converter, a.Logger.Named("export")),
		DownloadService: services.NewDownloadService(a.Store, a.Logger.Named("download")),
		HistoryService:  services.NewHistoryService(a.DB),
		ProviderService: services.NewProviderService(a.Registry),
		MaxUploadBytes:  int64(a.Settings.Server.MaxUploadMB) << 20,
	}
}
