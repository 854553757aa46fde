// Package launcher runs the development server behind a cloudflared tunnel.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	apperrors "lucidscript/internal/app/errors"
)

// MsgTunnelNotInstalled is reported when the tunnel binary is missing.
const MsgTunnelNotInstalled = "cloudflared is not installed"

// Config configures a Launcher.
type Config struct {
	// ServerCommand starts the HTTP server, program first.
	ServerCommand []string
	// Host and Port are where the server listens once ready.
	Host string
	Port string

	TunnelBinary string

	ReadyTimeout time.Duration
	PollInterval time.Duration
	// StopGrace is how long a process may take to exit after an interrupt
	// before it is killed.
	StopGrace time.Duration

	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig starts "<self> serve" on 127.0.0.1:8001.
func DefaultConfig(self string) Config {
	return Config{
		ServerCommand: []string{self, "serve", "--host", "127.0.0.1", "--port", "8001"},
		Host:          "127.0.0.1",
		Port:          "8001",
		TunnelBinary:  "cloudflared",
		ReadyTimeout:  30 * time.Second,
		PollInterval:  200 * time.Millisecond,
		StopGrace:     5 * time.Second,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
	}
}

// LocalURL is the address the tunnel forwards to.
func (c Config) LocalURL() string {
	return "http://" + net.JoinHostPort(c.Host, c.Port)
}

// TunnelArgs are the cloudflared arguments for a quick tunnel.
func (c Config) TunnelArgs() []string {
	return []string{"tunnel", "--url", c.LocalURL()}
}

// Launcher supervises the server and tunnel processes.
type Launcher struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a Launcher.
func New(cfg Config, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 200 * time.Millisecond
	}
	if cfg.StopGrace <= 0 {
		cfg.StopGrace = 5 * time.Second
	}
	return &Launcher{cfg: cfg, logger: logger}
}

// Run starts the server, waits until it accepts connections, then starts
// the tunnel. It returns when ctx is done or either process exits; both
// processes are stopped before returning. A cancelled ctx is a clean exit.
func (l *Launcher) Run(ctx context.Context) error {
	if len(l.cfg.ServerCommand) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, "server command is empty")
	}
	tunnelPath, err := exec.LookPath(l.cfg.TunnelBinary)
	if err != nil {
		return apperrors.Tag(apperrors.ErrBinaryNotFound, errors.New(MsgTunnelNotInstalled))
	}

	server, err := l.start("server", l.cfg.ServerCommand[0], l.cfg.ServerCommand[1:]...)
	if err != nil {
		return err
	}
	defer l.stop(server)

	addr := net.JoinHostPort(l.cfg.Host, l.cfg.Port)
	if err := l.waitReady(ctx, addr, server); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	l.logger.Info("Server is ready", zap.String("url", l.cfg.LocalURL()))

	tunnel, err := l.start("tunnel", tunnelPath, l.cfg.TunnelArgs()...)
	if err != nil {
		return err
	}
	defer l.stop(tunnel)

	select {
	case <-ctx.Done():
		l.logger.Info("Shutting down")
		return nil
	case err := <-server.done:
		server.exited = true
		return fmt.Errorf("server exited: %w", exitError(err))
	case err := <-tunnel.done:
		tunnel.exited = true
		return fmt.Errorf("tunnel exited: %w", exitError(err))
	}
}

// WaitReady polls addr until it accepts a TCP connection or timeout passes.
func WaitReady(ctx context.Context, addr string, timeout, interval time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.DialTimeout("tcp", addr, interval)
		if err == nil {
			conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("server at %s not ready after %s: %w", addr, timeout, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (l *Launcher) waitReady(ctx context.Context, addr string, server *process) error {
	readyCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ready := make(chan error, 1)
	go func() { ready <- WaitReady(readyCtx, addr, l.cfg.ReadyTimeout, l.cfg.PollInterval) }()

	select {
	case err := <-ready:
		return err
	case err := <-server.done:
		server.exited = true
		return fmt.Errorf("server exited before becoming ready: %w", exitError(err))
	}
}

type process struct {
	name   string
	cmd    *exec.Cmd
	done   chan error
	exited bool
}

func (l *Launcher) start(name, program string, args ...string) (*process, error) {
	cmd := exec.Command(program, args...)
	cmd.Stdout = l.cfg.Stdout
	cmd.Stderr = l.cfg.Stderr

	l.logger.Info("Starting process", zap.String("name", name), zap.String("program", program), zap.Strings("args", args))
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, apperrors.Tag(apperrors.ErrBinaryNotFound, err)
		}
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	p := &process{name: name, cmd: cmd, done: make(chan error, 1)}
	go func() { p.done <- cmd.Wait() }()
	return p, nil
}

// stop interrupts p and kills it when it outlives StopGrace.
func (l *Launcher) stop(p *process) {
	if p.exited {
		return
	}
	p.exited = true

	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		_ = p.cmd.Process.Kill()
	}
	select {
	case <-p.done:
	case <-time.After(l.cfg.StopGrace):
		l.logger.Warn("Process did not stop in time, killing", zap.String("name", p.name))
		_ = p.cmd.Process.Kill()
		<-p.done
	}
	l.logger.Info("Process stopped", zap.String("name", p.name))
}

func exitError(err error) error {
	if err == nil {
		return errors.New("exit status 0")
	}
	return err
}
