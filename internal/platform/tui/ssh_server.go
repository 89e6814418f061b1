// Package tui provides the Bubble Tea calculator UI, including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/game"
	"github.com/damiensmith1/broken-calculator/internal/storage"
)

// shutdownGrace bounds how long Serve waits for open sessions on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23235"
	HostKeyPath string        // empty generates ~/.brokencalc/host_key
	DBPath      string        // progress database shared by all users
	IdleTimeout time.Duration // idle sessions are closed after this long

	// UI is the per-session presentation config; screen size comes from the PTY.
	UI core.RuntimeConfig

	// Logger receives server and game logs. Nil creates a stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.brokencalc/progress.db",
		IdleTimeout: 30 * time.Minute,
		UI:          core.DefaultConfig(),
	}
}

// SSHServer serves the calculator over SSH. Every user name gets its own
// game and its own progress; sessions never share a Game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger

	// Exactly one of store and memory backs progress.
	store  *storage.Store
	memory *game.MemoryKV

	active atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A database that cannot be opened is not fatal: progress then lives in
// memory for the lifetime of the server.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	srv := &SSHServer{config: cfg, logger: cfg.Logger}
	if srv.logger == nil {
		srv.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "brokencalc-ssh",
		})
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	if store, openErr := storage.Open(cfg.DBPath); openErr != nil {
		srv.logger.Warn("could not open progress database, keeping progress in memory", "error", openErr)
		srv.memory = game.NewMemoryKV()
	} else {
		srv.store = store
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.trackSessions,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey returns the host key location, creating its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".brokencalc", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// progressFor returns the persistence pair for one SSH user.
func (s *SSHServer) progressFor(user string) (game.Progress, game.SolveRecorder) {
	if s.store == nil {
		return game.NewKVProgress(s.memory, user), nil
	}
	return s.store.Progress(user), s.store.Solves(user)
}

// newSessionGame builds the game for one SSH user.
func (s *SSHServer) newSessionGame(user string) *game.Game {
	progress, solves := s.progressFor(user)
	return game.New(game.Options{
		Progress:   progress,
		Solves:     solves,
		Logger:     s.logger.With("user", user),
		StartLevel: s.config.UI.StartLevel,
	})
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "brokencalc needs a terminal: connect with ssh -t")
		return nil, nil
	}

	cfg := s.sessionConfig(pty.Window.Width, pty.Window.Height)
	return NewModel(s.newSessionGame(sess.User()), cfg), []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionConfig is the UI config for a remote terminal of the given size.
// Remote users never write files on the server's disk.
func (s *SSHServer) sessionConfig(width, height int) core.RuntimeConfig {
	cfg := s.config.UI
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.Screenshots = false
	return cfg
}

// trackSessions counts open sessions and logs their lifetime.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

		logger.Info("session started", "active", s.active.Add(1))
		defer func() {
			logger.Info("session ended", "duration", time.Since(start).Round(time.Second), "active", s.active.Add(-1))
		}()

		next(sess)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// Serve accepts connections until ctx is cancelled, then shuts down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: SSH server stopped: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...", "active", s.ActiveSessions())
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits briefly for open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
