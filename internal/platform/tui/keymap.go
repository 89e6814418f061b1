package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/damiensmith1/broken-calculator/internal/core"
)

// tokenAliases maps keys that are not calculator characters onto tokens.
var tokenAliases = map[string]string{
	"x": "*",
	"X": "*",
}

// KeyMap defines the calculator key bindings.
// Digits, operators and parentheses are typed directly and are not listed here.
type KeyMap struct {
	Evaluate   key.Binding
	Backspace  key.Binding
	Clear      key.Binding
	Reset      key.Binding
	Next       key.Binding
	Hint       key.Binding
	Levels     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Hint, k.Levels, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Backspace, k.Clear},
		{k.Reset, k.Next, k.Hint},
		{k.Levels, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default calculator bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "esc", "delete"),
			key.WithHelp("c/esc", "clear"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset level"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Levels: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l/tab", "levels"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// DisableScreenshots turns off the screenshot binding; disabled bindings
// neither match nor show in help.
func (km *KeyMapper) DisableScreenshots() {
	km.keys.Screenshot.SetEnabled(false)
}

// Keys returns the bindings in use, for the help footer.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game event.
// Returns the event (Action may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.Event, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.Simple(core.ActionQuit), true
	}

	switch {
	case key.Matches(msg, km.keys.Evaluate):
		return core.Simple(core.ActionEvaluate), false
	case key.Matches(msg, km.keys.Backspace):
		return core.Simple(core.ActionBackspace), false
	case key.Matches(msg, km.keys.Clear):
		return core.Simple(core.ActionClear), false
	case key.Matches(msg, km.keys.Reset):
		return core.Simple(core.ActionResetLevel), false
	case key.Matches(msg, km.keys.Next):
		return core.Simple(core.ActionNextLevel), false
	case key.Matches(msg, km.keys.Hint):
		return core.Simple(core.ActionToggleHint), false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		token := string(msg.Runes)
		if alias, ok := tokenAliases[token]; ok {
			token = alias
		}
		if isCalculatorToken(token) {
			return core.AppendToken(token), false
		}
	}

	return core.Simple(core.ActionNone), false
}

func isCalculatorToken(token string) bool {
	if len(token) != 1 {
		return false
	}
	if core.IsDigit(rune(token[0])) {
		return true
	}
	switch token[0] {
	case '.', '+', '-', '*', '/', '(', ')':
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc", "tab":
		return MenuActionBack
	}

	return MenuActionNone
}
