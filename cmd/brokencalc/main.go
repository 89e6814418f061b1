// brokencalc is a terminal puzzle game: every level hides a rule that breaks
// the calculator, and the player has to make the broken result hit a target.
//
// Usage:
//
//	brokencalc play             - Play the campaign
//	brokencalc levels           - List levels and your progress
//	brokencalc rules            - List every rule the calculator can break with
//	brokencalc eval <expr>      - Evaluate an expression under a rule
//	brokencalc stats            - Show the solve log
//	brokencalc serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.brokencalc/config.yaml)
//	--db <path>         - Database path (default: ~/.brokencalc/progress.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/damiensmith1/broken-calculator/internal/config"
	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagLogLevel   string
	flagPlayer     string

	// Resolved before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brokencalc",
	Short: "Broken Calculator - a puzzle game about a calculator that lies",
	Long: `Broken Calculator is a terminal puzzle game. Every level hides a rule
that distorts either your expression or its result. Work out the rule and
make the broken display show the target number.

Available commands:
  play     - Play the campaign
  levels   - List levels and your progress
  rules    - List every rule
  eval     - Evaluate an expression under a rule
  stats    - Show the solve log
  serve    - Start SSH server for remote play

Examples:
  brokencalc play
  brokencalc play --level 4
  brokencalc eval "2+3*4" --rule swapPlusAndTimes
  brokencalc serve --ssh :2222`,
	PersistentPreRun: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Player whose progress to use (SSH users are stored by name)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves config file, environment and flags, in that order of precedence.
func loadConfig(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	appConfig = cfg

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brokencalc",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
}

// runtimeConfig builds the UI config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		StartLevel:   appConfig.UI.StartLevel,
		ShowActual:   appConfig.UI.ShowActual,
		HistoryLimit: appConfig.UI.HistoryLimit,
		Theme:        appConfig.UI.Theme,
		Screenshots:  true,
	}
}

// openStore opens the progress database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not be saved", "error", err)
		return nil
	}
	return store
}
