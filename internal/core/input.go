package core

// Action represents a semantic calculator action, abstracted from physical key presses.
// The presentation layer translates keys into actions; the game never sees keys.
type Action int

const (
	ActionNone        Action = iota
	ActionAppendToken        // digit, '.', operator or parenthesis key
	ActionClear              // C - clear the expression buffer
	ActionBackspace          // Backspace - drop the last typed character
	ActionEvaluate           // = or Enter - evaluate the expression
	ActionResetLevel         // R - restart the current level attempt
	ActionNextLevel          // N - advance after a win
	ActionSelectLevel        // L - pick a level from the selector
	ActionToggleHint         // H - show or hide the level hint
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAppendToken:
		return "AppendToken"
	case ActionClear:
		return "Clear"
	case ActionBackspace:
		return "Backspace"
	case ActionEvaluate:
		return "Evaluate"
	case ActionResetLevel:
		return "ResetLevel"
	case ActionNextLevel:
		return "NextLevel"
	case ActionSelectLevel:
		return "SelectLevel"
	case ActionToggleHint:
		return "ToggleHint"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a discrete request sent from the UI to the game.
// Token is only meaningful for ActionAppendToken, Level for ActionSelectLevel.
type Event struct {
	Action Action
	Token  string
	Level  int
}

// AppendToken builds an event that types a token into the expression.
func AppendToken(token string) Event {
	return Event{Action: ActionAppendToken, Token: token}
}

// SelectLevel builds an event that requests a level change.
func SelectLevel(id int) Event {
	return Event{Action: ActionSelectLevel, Level: id}
}

// Simple builds an event that carries no payload.
func Simple(a Action) Event {
	return Event{Action: a}
}
