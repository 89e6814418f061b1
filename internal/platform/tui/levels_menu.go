package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/game"
)

// levelGridColumns is the number of level cells per row in the picker.
const levelGridColumns = 7

// LevelSelectModel lets users pick an unlocked level from a grid.
type LevelSelectModel struct {
	levels    []game.LevelStatus
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	theme     Theme
	notice    string
	selected  int // 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a picker with the cursor on the current level.
func NewLevelSelectModel(levels []game.LevelStatus, width, height int, theme Theme) LevelSelectModel {
	m := LevelSelectModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     theme,
	}
	for i, lvl := range levels {
		if lvl.Current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action != MenuActionNone {
		m.notice = ""
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionRight:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionUp:
		if m.cursor-levelGridColumns >= 0 {
			m.cursor -= levelGridColumns
		}
	case MenuActionDown:
		if m.cursor+levelGridColumns < len(m.levels) {
			m.cursor += levelGridColumns
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		lvl := m.levels[m.cursor]
		if !lvl.Unlocked {
			m.notice = fmt.Sprintf("Level %d is locked. Solve level %d first.", lvl.ID, lvl.ID-1)
			return m, nil
		}
		m.selected = lvl.ID
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level grid.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		if i > 0 && i%levelGridColumns == 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderCell(i, lvl))
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if len(m.levels) > 0 {
		b.WriteString(m.theme.MenuDescription.Render(m.describe(m.levels[m.cursor])))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.theme.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("Arrows: Move  |  Enter: Play  |  Esc: Back  |  Q: Quit"))

	return b.String()
}

func (m LevelSelectModel) renderCell(i int, lvl game.LevelStatus) string {
	label := fmt.Sprintf(" %2d ", lvl.ID)
	switch {
	case lvl.Completed:
		label = fmt.Sprintf(" %2d*", lvl.ID)
	case !lvl.Unlocked:
		label = " -- "
	}

	style := m.theme.LevelOpen
	switch {
	case i == m.cursor:
		style = m.theme.LevelCursor
	case lvl.Completed:
		style = m.theme.LevelCompleted
	case !lvl.Unlocked:
		style = m.theme.LevelLocked
	}
	return style.Render(label)
}

func (m LevelSelectModel) describe(lvl game.LevelStatus) string {
	if !lvl.Unlocked {
		return fmt.Sprintf("Level %d: locked", lvl.ID)
	}
	status := "unsolved"
	if lvl.Completed {
		status = "solved"
	}
	return fmt.Sprintf("Level %d (%s): target %d, %s", lvl.ID, lvl.Tier, lvl.Target, status)
}

// Selected returns the chosen level id, or 0 if still choosing.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker on its own and returns the chosen
// level id, or 0 if the user backed out.
func RunLevelSelector(levels []game.LevelStatus, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelSelectModel(levels, cfg.ScreenW, cfg.ScreenH, ThemeByName(cfg.Theme))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return 0, nil
	}

	return m.Selected(), nil
}
