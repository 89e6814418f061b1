package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damiensmith1/broken-calculator/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List every rule the calculator can break with",
	Long: `Shows the full rule catalog. Result rules distort the answer,
expression rules rewrite what you typed before it is evaluated.`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) {
	all := rules.All()

	maxNameLen := 4 // "Rule" header
	for _, r := range all {
		if len(r.Name) > maxNameLen {
			maxNameLen = len(r.Name)
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, "Rule", "Kind", "Effect")
	fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, "----", "----", "------")

	for _, r := range all {
		fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, r.Name, r.Kind, r.Description)
	}

	fmt.Println()
	fmt.Println("Run 'brokencalc eval <expr> --rule <name>' to try one out.")
}
