package game

// HistoryEntry records one evaluation of the current attempt.
type HistoryEntry struct {
	Expression   string // What the player typed
	TrueResult   string // What the expression actually evaluates to
	BrokenResult string // What the broken calculator displayed
}

// History is the append-only evaluation log of a level attempt.
type History struct {
	entries []HistoryEntry
}

// Append records an entry at the end of the log.
func (h *History) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Entries returns a copy of all entries in evaluation order.
func (h *History) Entries() []HistoryEntry {
	result := make([]HistoryEntry, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of evaluations so far.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops every entry; used when a new attempt begins.
func (h *History) Clear() {
	h.entries = nil
}
