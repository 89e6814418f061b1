package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/damiensmith1/broken-calculator/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the broken calculator SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH user gets their own game. Progress and the solve log are stored
per user name in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brokencalc/host_key

Examples:
  brokencalc serve                           # Listen on the configured address
  brokencalc serve --ssh :2222               # Listen on port 2222
  brokencalc serve --host-key ./my_host_key  # Use specific host key
  brokencalc serve --db ./progress.db        # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, e.g. 30m (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.HostKeyPath = appConfig.SSH.HostKeyPath
	cfg.UI = runtimeConfig(80, 24)
	cfg.Logger = logger.WithPrefix("brokencalc-ssh")
	if appConfig.SSH.Address != "" {
		cfg.Address = appConfig.SSH.Address
	}
	if appConfig.Storage.DBPath != "" {
		cfg.DBPath = appConfig.Storage.DBPath
	}
	if appConfig.SSH.IdleTimeout > 0 {
		cfg.IdleTimeout = appConfig.SSH.IdleTimeout
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting broken calculator SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = server.Serve(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
