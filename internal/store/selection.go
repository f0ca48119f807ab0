package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// SelectionKey is the preference key holding the selected categories.
const SelectionKey = "mathQuizCategories"

// ErrMalformedSelection is returned when the stored selection is not a
// JSON array of strings.
var ErrMalformedSelection = errors.New("malformed category selection")

// SelectionStore persists the selected category IDs as a JSON array under
// SelectionKey.
type SelectionStore struct {
	prefs PrefsRepo
}

// NewSelectionStore creates a SelectionStore on top of a PrefsRepo.
func NewSelectionStore(prefs PrefsRepo) *SelectionStore {
	return &SelectionStore{prefs: prefs}
}

// Load returns the saved selection, or nil if none has been saved.
func (s *SelectionStore) Load(ctx context.Context) ([]string, error) {
	p, err := s.prefs.Get(ctx, SelectionKey)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return decodeSelection(p.Value)
}

// Save replaces the saved selection.
func (s *SelectionStore) Save(ctx context.Context, ids []string) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}
	return s.prefs.Set(ctx, SelectionKey, string(b))
}

// Clear removes the saved selection.
func (s *SelectionStore) Clear(ctx context.Context) error {
	return s.prefs.Delete(ctx, SelectionKey)
}

func decodeSelection(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSelection, err)
	}
	return ids, nil
}

// MemorySelectionStore keeps the selection in memory. It is used when the
// database is unavailable and in tests.
type MemorySelectionStore struct {
	mu  sync.Mutex
	ids []string
	set bool
}

// Load returns the saved selection, or nil if none has been saved.
func (m *MemorySelectionStore) Load(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, nil
	}
	return slices.Clone(m.ids), nil
}

// Save replaces the saved selection.
func (m *MemorySelectionStore) Save(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = slices.Clone(ids)
	m.set = true
	return nil
}

// Clear removes the saved selection.
func (m *MemorySelectionStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = nil
	m.set = false
	return nil
}
