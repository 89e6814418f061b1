package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the calculator.
type Theme struct {
	// Header
	Title  lipgloss.Style
	Level  lipgloss.Style
	Target lipgloss.Style

	// Calculator body
	DisplayBox lipgloss.Style
	DisplayWon lipgloss.Style
	Key        lipgloss.Style
	KeyOp      lipgloss.Style

	// History
	HistoryExpr   lipgloss.Style
	HistoryBroken lipgloss.Style
	HistoryActual lipgloss.Style

	// Messages
	Hint    lipgloss.Style
	Success lipgloss.Style
	Notice  lipgloss.Style
	Help    lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	LevelLocked     lipgloss.Style
	LevelOpen       lipgloss.Style
	LevelCompleted  lipgloss.Style
	LevelCursor     lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Level:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Target: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		DisplayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Align(lipgloss.Right).
			Padding(0, 1),
		DisplayWon: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("46")).
			Foreground(lipgloss.Color("46")).
			Bold(true).
			Align(lipgloss.Right).
			Padding(0, 1),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		KeyOp: lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // Orange operators

		HistoryExpr:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		HistoryBroken: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		HistoryActual: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),

		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Italic(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		LevelLocked:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		LevelOpen:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LevelCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		LevelCursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Target = lipgloss.NewStyle().Bold(true)
	theme.DisplayWon = theme.DisplayBox.BorderStyle(lipgloss.DoubleBorder())
	theme.KeyOp = lipgloss.NewStyle().Bold(true)
	theme.HistoryBroken = lipgloss.NewStyle().Bold(true)
	theme.Success = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.LevelCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.LevelCursor = lipgloss.NewStyle().Reverse(true)
	return theme
}

// ThemeByName returns a named theme, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}
