package dev

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lucidscript/internal/app/common"
	"lucidscript/internal/launcher"
)

var (
	port         string
	tunnelBinary string
	readyTimeout time.Duration
)

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "8001", "local server port")
	Cmd.Flags().StringVar(&tunnelBinary, "tunnel", "cloudflared", "cloudflared binary")
	Cmd.Flags().DurationVar(&readyTimeout, "ready-timeout", 30*time.Second, "how long to wait for the server")
}

// Cmd represents the dev command
var Cmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the server locally behind a cloudflared tunnel",
	Long: `Run "lucidscript serve" on 127.0.0.1, wait until it accepts connections,
then open a cloudflared quick tunnel to it. Ctrl-C stops both.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		self, err := os.Executable()
		if err != nil {
			return err
		}
		logger := common.MustNewLogger(true, "info")
		defer logger.Sync()

		cfg := launcher.DefaultConfig(self)
		cfg.Port = port
		cfg.ServerCommand = []string{self, "serve", "--host", cfg.Host, "--port", port}
		cfg.TunnelBinary = tunnelBinary
		cfg.ReadyTimeout = readyTimeout

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return launcher.New(cfg, logger.Named("dev")).Run(ctx)
	},
}
