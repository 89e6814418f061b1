package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/game"
)

// keypadRows is the decorative keypad drawn under the display.
var keypadRows = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"(", ")", "C", "<"},
}

const displayWidth = 22

// renderCalculator draws the whole calculator screen for a game snapshot.
func renderCalculator(v game.View, cfg core.RuntimeConfig, theme Theme) string {
	var sections []string

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Title.Render("BROKEN CALCULATOR"),
		"   ",
		theme.Level.Render(fmt.Sprintf("Level %d/%d  %s", v.Level.ID, v.LevelCount, v.Level.Tier)),
	)
	sections = append(sections, header)
	sections = append(sections, "Target: "+theme.Target.Render(fmt.Sprintf("%d", v.Level.Target)))

	display := theme.DisplayBox
	if v.Phase == game.PhaseWon {
		display = theme.DisplayWon
	}
	sections = append(sections, display.Width(displayWidth).Render(truncateLeft(v.Display, displayWidth-2)))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderKeypad(theme),
		"    ",
		renderHistory(v.History, cfg, theme),
	)
	sections = append(sections, body)

	if v.HintVisible {
		sections = append(sections, theme.Hint.Render("Hint: "+v.Level.Hint))
	}

	switch {
	case v.Phase == game.PhaseWon && v.CanAdvance:
		sections = append(sections, theme.Success.Render("Solved! Press n for the next level."))
	case v.Phase == game.PhaseWon:
		sections = append(sections, theme.Success.Render("Solved! That was the last level."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderKeypad(theme Theme) string {
	var b strings.Builder
	for i, row := range keypadRows {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, k := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			style := theme.Key
			if !core.IsDigit(rune(k[0])) && k != "." {
				style = theme.KeyOp
			}
			b.WriteString(style.Render("[" + k + "]"))
		}
	}
	return b.String()
}

// renderHistory lists the most recent evaluations, newest last.
func renderHistory(entries []game.HistoryEntry, cfg core.RuntimeConfig, theme Theme) string {
	if len(entries) == 0 {
		return theme.HistoryActual.Render("No calculations yet.")
	}

	if cfg.HistoryLimit > 0 && len(entries) > cfg.HistoryLimit {
		entries = entries[len(entries)-cfg.HistoryLimit:]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := theme.HistoryExpr.Render(e.Expression) + " = " + theme.HistoryBroken.Render(e.BrokenResult)
		if cfg.ShowActual {
			line += " " + theme.HistoryActual.Render("(actually: "+e.TrueResult+")")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// truncateLeft keeps the tail of s, which is the part being typed.
func truncateLeft(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return "…" + s[len(s)-width+1:]
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
