package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/game"
	"github.com/damiensmith1/broken-calculator/internal/platform/tui"
)

var (
	flagLevel int
	flagPick  bool
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the broken calculator.

Controls:
  0-9 . + - * / ( )  - Type the expression (x also multiplies)
  Enter/=            - Evaluate
  Backspace          - Delete last character
  C/Esc              - Clear
  H                  - Show or hide the hint
  R                  - Reset the level
  N                  - Next level (after solving)
  L/Tab              - Level picker
  Q/Ctrl+C           - Quit

Level n unlocks once level n-1 is solved.

Examples:
  brokencalc play
  brokencalc play --level 3
  brokencalc play --pick
  brokencalc play --theme mono`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to open (must be unlocked)")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose a level before starting")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: default, mono (overrides config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := runtimeConfig(width, height)
	if flagLevel != 0 {
		cfg.StartLevel = flagLevel
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	opts := game.Options{
		Logger:     logger,
		StartLevel: cfg.StartLevel,
	}

	store := openStore()
	if store != nil {
		opts.Progress = store.Progress(flagPlayer)
		opts.Solves = store.Solves(flagPlayer)
	}

	g := game.New(opts)
	if flagLevel != 0 && g.Level().ID != flagLevel {
		logger.Warn("level is locked, starting elsewhere", "requested", flagLevel, "level", g.Level().ID)
	}

	runErr := runGame(g, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runGame shows the level picker first when --pick is set.
func runGame(g *game.Game, cfg core.RuntimeConfig) error {
	if flagPick {
		id, err := tui.RunLevelSelector(g.View().Levels, cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if id == 0 {
			return nil
		}
		g.SelectLevel(id)
	}
	return tui.Run(g, cfg)
}
