package game

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// ProgressKey is the key under which completed level ids are stored.
const ProgressKey = "completedLevels"

// Progress persists the set of completed level ids across sessions.
type Progress interface {
	// Load returns previously completed ids. Absent data is an empty set.
	Load() ([]int, error)
	// Save replaces the stored set.
	Save(completed []int) error
}

// KeyValueStore is the minimal storage capability progress needs.
type KeyValueStore interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Solve describes a first-time level completion.
type Solve struct {
	AttemptID   string
	LevelID     int
	Evaluations int
}

// SolveRecorder receives first-time completions for the solve log.
type SolveRecorder interface {
	RecordSolve(s Solve) error
}

// KVProgress stores completed ids as a JSON array in a key-value store.
type KVProgress struct {
	kv  KeyValueStore
	key string
}

// NewKVProgress creates progress backed by kv.
// A non-empty namespace keeps several players apart in one store.
func NewKVProgress(kv KeyValueStore, namespace string) *KVProgress {
	key := ProgressKey
	if namespace != "" {
		key = namespace + ":" + ProgressKey
	}
	return &KVProgress{kv: kv, key: key}
}

// Key returns the storage key in use.
func (p *KVProgress) Key() string {
	return p.key
}

// Load implements Progress.
func (p *KVProgress) Load() ([]int, error) {
	raw, ok, err := p.kv.Get(p.key)
	if err != nil {
		return nil, fmt.Errorf("game: load progress: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("game: corrupt progress %q: %w", p.key, err)
	}
	return ids, nil
}

// Save implements Progress.
func (p *KVProgress) Save(completed []int) error {
	ids := append([]int(nil), completed...)
	sort.Ints(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("game: encode progress: %w", err)
	}
	if err := p.kv.Set(p.key, string(data)); err != nil {
		return fmt.Errorf("game: save progress: %w", err)
	}
	return nil
}

// MemoryKV is an in-process KeyValueStore, used when no database is available.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get implements KeyValueStore.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KeyValueStore.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
