package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/damiensmith1/broken-calculator/internal/levels"
	"github.com/damiensmith1/broken-calculator/internal/platform/tui"
	"github.com/damiensmith1/broken-calculator/internal/storage"
)

var (
	flagStatsTUI   bool
	flagStatsReset bool
	flagRecent     int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the solve log",
	Long: `Display per-level solve statistics for a player: how many times the
level was solved and the fewest evaluations it took.

Examples:
  brokencalc stats
  brokencalc stats --player alice
  brokencalc stats --tui
  brokencalc stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse the stats in an interactive table")
	statsCmd.Flags().BoolVar(&flagStatsReset, "reset", false, "Delete the player's progress and solve log")
	statsCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent solves to list")
}

func runStats(cmd *cobra.Command, _ []string) {
	store := openStore()
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: no progress database available")
		os.Exit(1)
	}

	err := showStats(store)

	// Close store before potential exit
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showStats(store *storage.Store) error {
	if flagStatsReset {
		if err := store.ClearPlayer(flagPlayer); err != nil {
			return err
		}
		fmt.Printf("Cleared progress and solve log for %s.\n", flagPlayer)
		return nil
	}

	catalog := levels.Default()

	if flagStatsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunStats(store, flagPlayer, catalog, width, height)
	}

	stats, err := store.LevelStats(flagPlayer)
	if err != nil {
		return err
	}

	fmt.Printf("Solve log - %s\n", flagPlayer)
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Println("Run 'brokencalc play' to start the campaign!")
		return nil
	}

	fmt.Printf("  %-5s  %-7s  %-6s  %-4s  %s\n", "Level", "Target", "Solves", "Best", "Last solved")
	fmt.Printf("  %-5s  %-7s  %-6s  %-4s  %s\n", "-----", "------", "------", "----", "-----------")

	for _, s := range stats {
		target := "?"
		if lvl, ok := catalog.Get(s.LevelID); ok {
			target = fmt.Sprintf("%d", lvl.Target)
		}
		last := "-"
		if !s.LastSolved.IsZero() {
			last = s.LastSolved.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-5d  %-7s  %-6d  %-4d  %s\n", s.LevelID, target, s.Solves, s.BestEvaluations, last)
	}

	recent, err := store.RecentSolves(flagPlayer, flagRecent)
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent solves:")
		for _, r := range recent {
			fmt.Printf("  level %-3d in %d evaluation(s)  %s\n", r.LevelID, r.Evaluations, r.AttemptID)
		}
	}
	return nil
}
