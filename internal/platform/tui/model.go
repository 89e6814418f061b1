package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/game"
)

// Model is the Bubble Tea model for the calculator.
// It owns no game state itself: it renders game.View snapshots and forwards
// key presses to the game as core.Events.
type Model struct {
	game      *game.Game
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	theme     Theme
	selector  *LevelSelectModel
	notice    string
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	keyMapper := NewKeyMapper()
	if !cfg.Screenshots {
		keyMapper.DisableScreenshots()
	}

	return Model{
		game:      g,
		config:    cfg,
		keyMapper: keyMapper,
		help:      h,
		theme:     ThemeByName(cfg.Theme),
	}
}

// Init initializes the model. The calculator is event driven and needs no ticks.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}

	if m.selector != nil {
		return m.updateSelector(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	m.notice = ""

	switch {
	case key.Matches(msg, keys.Levels):
		selector := NewLevelSelectModel(m.game.View().Levels, m.config.ScreenW, m.config.ScreenH, m.theme)
		m.selector = &selector
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.notice = m.saveScreenshot()
		return m, nil
	}

	ev, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if ev.Action != core.ActionNone {
		m.game.Dispatch(ev)
	}
	return m, nil
}

// updateSelector forwards messages to the level picker while it is open.
// The picker's own quit command is dropped unless the user asked to quit.
func (m Model) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, _ := m.selector.Update(msg)
	selector, ok := updated.(LevelSelectModel)
	if !ok {
		m.selector = nil
		return m, nil
	}

	switch {
	case selector.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case selector.Selected() != 0:
		m.game.Dispatch(core.SelectLevel(selector.Selected()))
		m.selector = nil
	case selector.WantsBack():
		m.selector = nil
	default:
		m.selector = &selector
	}
	return m, nil
}

// saveScreenshot writes the current screen as plain text and returns a notice.
func (m Model) saveScreenshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".brokencalc", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%02d_%s.txt", m.game.Level().ID, timestamp))

	screen := ansi.Strip(renderCalculator(m.game.View(), m.config, m.theme))
	if err := os.WriteFile(path, []byte(screen+"\n"), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.selector != nil {
		return m.selector.View()
	}

	out := renderCalculator(m.game.View(), m.config, m.theme)
	if m.notice != "" {
		out += "\n" + m.theme.Notice.Render(m.notice)
	}
	return out + "\n\n" + m.theme.Help.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	model := NewModel(g, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
