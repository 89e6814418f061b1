// Package game implements the broken calculator's level progression.
//
// A Game owns the expression buffer, the history of the current attempt and
// the set of completed levels. It is mutated only through Dispatch (or the
// equivalent methods) and exposes an immutable View for rendering.
package game

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/damiensmith1/broken-calculator/internal/calc"
	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/levels"
	"github.com/damiensmith1/broken-calculator/internal/rules"
)

// Phase is the state of the current level attempt.
type Phase int

const (
	PhaseIdle       Phase = iota // level loaded, nothing evaluated yet
	PhaseInProgress              // at least one evaluation, target not hit
	PhaseWon                     // target hit; input ignored until reset or level change
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseInProgress:
		return "InProgress"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Options configures a new Game.
type Options struct {
	Catalog    *levels.Catalog // nil uses the embedded campaign
	Progress   Progress        // nil keeps progress in memory only
	Solves     SolveRecorder   // optional solve log
	Logger     *log.Logger     // nil discards logs
	StartLevel int             // opened if unlocked, otherwise level 1
}

// Game is the progression state machine for one player.
type Game struct {
	catalog  *levels.Catalog
	progress Progress
	solves   SolveRecorder
	logger   *log.Logger

	levelID   int
	phase     Phase
	completed map[int]bool
	attemptID string

	buffer   Buffer
	history  History
	display  string
	showHint bool
}

// New creates a game and loads completed levels from the progress store.
// Unreadable progress is logged and treated as no progress.
func New(opts Options) *Game {
	g := &Game{
		catalog:   opts.Catalog,
		progress:  opts.Progress,
		solves:    opts.Solves,
		logger:    opts.Logger,
		completed: make(map[int]bool),
	}
	if g.catalog == nil {
		g.catalog = levels.Default()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	if g.progress != nil {
		ids, err := g.progress.Load()
		if err != nil {
			g.logger.Warn("could not load progress, starting fresh", "error", err)
		}
		for _, id := range ids {
			g.completed[id] = true
		}
	}

	g.levelID = g.catalog.First().ID
	if opts.StartLevel != 0 && g.IsUnlocked(opts.StartLevel) {
		g.levelID = opts.StartLevel
	}
	g.startAttempt()

	return g
}

// startAttempt resets everything that belongs to a single attempt.
func (g *Game) startAttempt() {
	g.phase = PhaseIdle
	g.buffer.Clear()
	g.history.Clear()
	g.display = "0"
	g.showHint = false
	g.attemptID = uuid.NewString()
}

// Dispatch applies a UI event. Quit and unknown actions are ignored here.
func (g *Game) Dispatch(ev core.Event) {
	switch ev.Action {
	case core.ActionAppendToken:
		g.AppendToken(ev.Token)
	case core.ActionClear:
		g.Clear()
	case core.ActionBackspace:
		g.Backspace()
	case core.ActionEvaluate:
		g.Evaluate()
	case core.ActionResetLevel:
		g.ResetLevel()
	case core.ActionNextLevel:
		g.NextLevel()
	case core.ActionSelectLevel:
		g.SelectLevel(ev.Level)
	case core.ActionToggleHint:
		g.ToggleHint()
	}
}

// AppendToken types a token into the expression.
// A digit typed while the display reads 0 starts a fresh expression.
func (g *Game) AppendToken(token string) {
	if g.phase == PhaseWon || !ValidToken(token) {
		return
	}
	if g.display == "0" && strings.ContainsAny(token, "0123456789") {
		g.buffer.Replace(token)
	} else {
		g.buffer.Append(token)
	}
	g.display = g.buffer.Text()
}

// Clear empties the expression and resets the display.
func (g *Game) Clear() {
	if g.phase == PhaseWon {
		return
	}
	g.buffer.Clear()
	g.display = "0"
}

// Backspace removes the last typed character.
func (g *Game) Backspace() {
	if g.phase == PhaseWon {
		return
	}
	g.buffer.Backspace()
	g.display = g.buffer.Text()
	if g.display == "" {
		g.display = "0"
	}
}

// Evaluate runs the expression through the current level's rule, records the
// result in the history and checks the target. An empty expression is ignored.
func (g *Game) Evaluate() {
	if g.phase == PhaseWon || g.buffer.Empty() {
		return
	}

	lvl := g.Level()
	expr := g.buffer.Text()
	trueResult := calc.Evaluate(expr, lvl.Rule)
	broken := rules.Apply(trueResult, lvl.Rule)

	g.history.Append(HistoryEntry{
		Expression:   expr,
		TrueResult:   core.FormatNumber(trueResult),
		BrokenResult: broken,
	})
	g.display = broken
	g.buffer.Clear()
	g.phase = PhaseInProgress

	if n, ok := core.ParseInteger(broken); ok && n == lvl.Target {
		g.win()
	}
}

// win ends the attempt and records the level as completed.
func (g *Game) win() {
	g.phase = PhaseWon
	if g.completed[g.levelID] {
		return
	}

	g.completed[g.levelID] = true
	g.logger.Debug("level solved", "level", g.levelID, "evaluations", g.history.Len())

	if g.progress != nil {
		if err := g.progress.Save(g.Completed()); err != nil {
			g.logger.Warn("could not save progress", "level", g.levelID, "error", err)
		}
	}
	if g.solves != nil {
		solve := Solve{AttemptID: g.attemptID, LevelID: g.levelID, Evaluations: g.history.Len()}
		if err := g.solves.RecordSolve(solve); err != nil {
			g.logger.Warn("could not record solve", "level", g.levelID, "error", err)
		}
	}
}

// ResetLevel starts the current level over from any phase.
func (g *Game) ResetLevel() {
	g.startAttempt()
}

// NextLevel advances to the following level after a win.
// Does nothing before the target is hit or on the last level.
func (g *Game) NextLevel() {
	if g.phase != PhaseWon || !g.catalog.Has(g.levelID+1) {
		return
	}
	g.levelID++
	g.startAttempt()
}

// SelectLevel switches to another level if it exists and is unlocked.
// Returns false (and changes nothing) when the request is rejected.
func (g *Game) SelectLevel(id int) bool {
	if !g.IsUnlocked(id) {
		return false
	}
	g.levelID = id
	g.startAttempt()
	return true
}

// ToggleHint shows or hides the current level's hint.
func (g *Game) ToggleHint() {
	g.showHint = !g.showHint
}

// IsUnlocked reports whether a level can be selected: level 1 always, level n
// once level n-1 is completed.
func (g *Game) IsUnlocked(id int) bool {
	if !g.catalog.Has(id) {
		return false
	}
	return id == g.catalog.First().ID || g.completed[id-1]
}

// IsCompleted reports whether a level has ever been solved.
func (g *Game) IsCompleted(id int) bool {
	return g.completed[id]
}

// Completed returns the completed level ids in ascending order.
func (g *Game) Completed() []int {
	ids := make([]int, 0, len(g.completed))
	for id := range g.completed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Level returns the current level.
func (g *Game) Level() levels.Level {
	lvl, _ := g.catalog.Get(g.levelID)
	return lvl
}

// Phase returns the state of the current attempt.
func (g *Game) Phase() Phase {
	return g.phase
}

// Catalog returns the level catalog the game plays through.
func (g *Game) Catalog() *levels.Catalog {
	return g.catalog
}
