package core

// RuntimeConfig contains configuration passed to the UI at initialization.
type RuntimeConfig struct {
	ScreenW      int  // Screen width in characters
	ScreenH      int  // Screen height in characters
	StartLevel   int  // Level to open on start (0 = first unlocked default)
	ShowActual   bool // Show the true result next to each history entry
	HistoryLimit int  // Number of history rows kept on screen
	Theme        string
	Screenshots  bool // Allow ctrl+s to write plain-text screenshots to the local disk
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		StartLevel:   0,
		ShowActual:   true,
		HistoryLimit: 8,
		Theme:        "default",
		Screenshots:  true,
	}
}
