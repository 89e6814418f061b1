package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/damiensmith1/broken-calculator/internal/calc"
	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/rules"
)

var (
	flagRule   string
	flagTarget int
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression under a rule",
	Long: `Runs an expression through the calculator exactly as a level would:
expression rules rewrite it, the evaluator computes the true result and
result rules distort it into the broken result.

Malformed expressions evaluate to 0, as they do in the game; the parse
error is still reported here.

Examples:
  brokencalc eval "32" --rule doubled
  brokencalc eval "2+3*4" --rule swapPlusAndTimes
  brokencalc eval "49" --rule offByOne --target 50`,
	Args: cobra.ExactArgs(1),
	Run:  runEval,
}

func init() {
	evalCmd.Flags().StringVar(&flagRule, "rule", "", "Rule name (see 'brokencalc rules')")
	evalCmd.Flags().IntVar(&flagTarget, "target", 0, "Check the broken result against a target")
	_ = evalCmd.MarkFlagRequired("rule")
}

func runEval(cmd *cobra.Command, args []string) {
	expr := args[0]

	rule, err := rules.Parse(flagRule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'brokencalc rules' to see available rules.")
		os.Exit(1)
	}

	rewritten := calc.Rewrite(expr, rule)
	if _, parseErr := calc.Parse(rewritten); parseErr != nil {
		var syntaxErr *calc.SyntaxError
		switch {
		case errors.Is(parseErr, calc.ErrEmpty):
			fmt.Println("Note: empty expression, evaluating as 0")
		case errors.As(parseErr, &syntaxErr):
			fmt.Printf("Note: %v, evaluating as 0\n", syntaxErr)
		}
	}

	trueResult := calc.Evaluate(expr, rule)
	broken := rules.Apply(trueResult, rule)

	fmt.Printf("  %-10s %s\n", "Rule", rule)
	if rewritten != expr {
		fmt.Printf("  %-10s %s\n", "Rewritten", rewritten)
	}
	fmt.Printf("  %-10s %s\n", "Actual", core.FormatNumber(trueResult))
	fmt.Printf("  %-10s %s\n", "Display", broken)

	if cmd.Flags().Changed("target") {
		if n, ok := core.ParseInteger(broken); ok && n == flagTarget {
			fmt.Printf("\nHit! %s matches target %d.\n", broken, flagTarget)
		} else {
			fmt.Printf("\nMiss. %s does not match target %d.\n", broken, flagTarget)
		}
	}
}
