package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damiensmith1/broken-calculator/internal/game"
)

var flagShowRules bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and your progress",
	Long: `Shows every level with its target and whether it is locked,
unlocked or solved for the selected player.

Examples:
  brokencalc levels
  brokencalc levels --player alice
  brokencalc levels --spoilers`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowRules, "spoilers", false, "Also show the rule behind each level")
}

func runLevels(cmd *cobra.Command, _ []string) {
	opts := game.Options{Logger: logger}
	store := openStore()
	if store != nil {
		defer store.Close()
		opts.Progress = store.Progress(flagPlayer)
	}
	g := game.New(opts)
	v := g.View()

	fmt.Printf("Levels - %s (%d/%d solved)\n", flagPlayer, len(g.Completed()), v.LevelCount)
	fmt.Println()

	header := fmt.Sprintf("  %-5s  %-12s  %-7s  %-8s", "Level", "Tier", "Target", "Status")
	if flagShowRules {
		header += "  Rule"
	}
	fmt.Println(header)

	for _, lvl := range v.Levels {
		status := "locked"
		switch {
		case lvl.Completed:
			status = "solved"
		case lvl.Unlocked:
			status = "open"
		}

		line := fmt.Sprintf("  %-5d  %-12s  %-7d  %-8s", lvl.ID, lvl.Tier, lvl.Target, status)
		if flagShowRules {
			if full, ok := g.Catalog().Get(lvl.ID); ok {
				line += "  " + full.Rule.String()
			}
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'brokencalc play --level <n>' to jump to an open level.")
}
