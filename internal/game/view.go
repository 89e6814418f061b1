package game

import "github.com/damiensmith1/broken-calculator/internal/levels"

// LevelStatus is the selector's view of one level.
type LevelStatus struct {
	ID        int
	Tier      string
	Target    int
	Unlocked  bool
	Completed bool
	Current   bool
}

// View is a read-only snapshot of everything the presentation layer renders.
type View struct {
	Level       levels.Level
	LevelCount  int
	Phase       Phase
	Display     string
	Expression  string
	History     []HistoryEntry
	HintVisible bool
	Levels      []LevelStatus
	CanAdvance  bool // a following level exists and the current one is won
}

// View returns a snapshot of the current state. Mutating it has no effect on the game.
func (g *Game) View() View {
	all := g.catalog.All()
	statuses := make([]LevelStatus, len(all))
	for i, lvl := range all {
		statuses[i] = LevelStatus{
			ID:        lvl.ID,
			Tier:      lvl.Tier,
			Target:    lvl.Target,
			Unlocked:  g.IsUnlocked(lvl.ID),
			Completed: g.completed[lvl.ID],
			Current:   lvl.ID == g.levelID,
		}
	}

	return View{
		Level:       g.Level(),
		LevelCount:  g.catalog.Count(),
		Phase:       g.phase,
		Display:     g.display,
		Expression:  g.buffer.Text(),
		History:     g.history.Entries(),
		HintVisible: g.showHint,
		Levels:      statuses,
		CanAdvance:  g.phase == PhaseWon && g.catalog.Has(g.levelID+1),
	}
}
