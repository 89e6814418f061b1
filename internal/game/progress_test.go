package game

import (
	"reflect"
	"testing"
)

func TestKVProgressRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	p := NewKVProgress(kv, "")

	ids, err := p.Load()
	if err != nil {
		t.Fatalf("Load() on empty store failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Load() = %v, expected empty", ids)
	}

	if err := p.Save([]int{3, 1, 2}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	ids, err = p.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Errorf("Load() = %v, expected [1 2 3]", ids)
	}
}

func TestKVProgressCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"object", `{"a":1}`},
		{"strings", `["one"]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemoryKV()
			kv.Set(ProgressKey, tc.raw)

			if _, err := NewKVProgress(kv, "").Load(); err == nil {
				t.Error("Load() should report corrupt data")
			}

			// The game itself degrades to no progress.
			g := New(Options{Catalog: testCatalog(t), Progress: NewKVProgress(kv, "")})
			if len(g.Completed()) != 0 {
				t.Errorf("Completed() = %v, expected empty", g.Completed())
			}
		})
	}
}

func TestKVProgressNamespaces(t *testing.T) {
	kv := NewMemoryKV()
	alice := NewKVProgress(kv, "alice")
	bob := NewKVProgress(kv, "bob")

	if alice.Key() != "alice:completedLevels" {
		t.Errorf("Key() = %q", alice.Key())
	}
	if NewKVProgress(kv, "").Key() != ProgressKey {
		t.Error("empty namespace should use the bare key")
	}

	if err := alice.Save([]int{1, 2}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	ids, err := bob.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("bob sees alice's progress: %v", ids)
	}
}

func TestBuffer(t *testing.T) {
	var b Buffer
	if !b.Empty() {
		t.Error("zero Buffer should be empty")
	}
	if b.Append("1a") {
		t.Error("Append should reject letters")
	}
	b.Append("(1.5")
	b.Append("*")
	b.Backspace()
	if b.Text() != "(1.5" {
		t.Errorf("Text() = %q, expected (1.5", b.Text())
	}
	b.Replace("9")
	if b.Text() != "9" {
		t.Errorf("Text() = %q, expected 9", b.Text())
	}
	b.Clear()
	b.Backspace()
	if !b.Empty() {
		t.Error("Buffer should be empty after Clear")
	}
}

func TestHistory(t *testing.T) {
	var h History
	h.Append(HistoryEntry{Expression: "1", TrueResult: "1", BrokenResult: "2"})
	h.Append(HistoryEntry{Expression: "2", TrueResult: "2", BrokenResult: "4"})

	entries := h.Entries()
	if len(entries) != 2 || entries[0].Expression != "1" || entries[1].Expression != "2" {
		t.Errorf("Entries() = %+v, expected evaluation order", entries)
	}

	entries[0].Expression = "x"
	if h.Entries()[0].Expression != "1" {
		t.Error("Entries() should return a copy")
	}

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear", h.Len())
	}
}
