package persistence

import (
	"encoding/json"
	"sync"

	"github.com/motmot/nexlink/backend/internal/store"
)

// MemorySlot keeps the snapshot document in memory. Used by tests and
// ephemeral runs. The document goes through a JSON round-trip so its
// behavior matches a durable slot.
type MemorySlot struct {
	mu  sync.Mutex
	doc []byte
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load decodes the last saved document, or (nil, nil) when nothing was
// saved yet.
func (m *MemorySlot) Load() (*store.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doc == nil {
		return nil, nil
	}
	var state store.State
	if err := json.Unmarshal(m.doc, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save encodes and retains the document.
func (m *MemorySlot) Save(state *store.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.doc = raw
	m.mu.Unlock()
	return nil
}
