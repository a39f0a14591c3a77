package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
)

// Store keeps recent successful queries, most recent first
type Store struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
	limit   int
}

type historyFile struct {
	Entries []domain.HistoryEntry `toml:"entries"`
}

// New creates an empty store keeping at most limit entries.
// A limit of zero disables recording.
func New(limit int) *Store {
	return &Store{limit: limit}
}

// LoadFromPath reads a history file; a missing file yields an empty store
func LoadFromPath(path string, limit int) (*Store, error) {
	s := New(limit)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read history: %w", err)
	}

	var f historyFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return s, fmt.Errorf("failed to parse history: %w", err)
	}

	// oldest first so Record leaves the newest at the front
	for i := len(f.Entries) - 1; i >= 0; i-- {
		s.Record(f.Entries[i].Query, f.Entries[i].Results)
	}
	return s, nil
}

// SaveToPath writes the history as TOML
func (s *Store) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(historyFile{Entries: s.Entries()}); err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Record moves query to the front, dropping an older case-insensitive duplicate.
// Returns false when nothing was recorded.
func (s *Store) Record(query string, results int) bool {
	query = strings.TrimSpace(query)
	if query == "" || s.limit <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.HistoryEntry, 0, len(s.entries)+1)
	kept = append(kept, domain.HistoryEntry{Query: query, Results: results})
	for _, e := range s.entries {
		if !strings.EqualFold(e.Query, query) {
			kept = append(kept, e)
		}
	}
	if len(kept) > s.limit {
		kept = kept[:s.limit]
	}
	s.entries = kept
	return true
}

// Entries returns a copy of the history, most recent first
func (s *Store) Entries() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.HistoryEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Matching returns up to limit recent queries containing query.
// A limit <= 0 means no limit.
func (s *Store) Matching(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []string
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Query), q) {
			result = append(result, e.Query)
			if limit > 0 && len(result) == limit {
				break
			}
		}
	}
	return result
}

// Attach records every search that returned results.
// Returns the unsubscribe function.
func (s *Store) Attach(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.SearchCompletedEvent)
		if !ok || len(event.Items) == 0 {
			return
		}
		if s.Record(event.Query, len(event.Items)) {
			bus.Publish(eventbus.HistoryRecordedEvent{Query: strings.TrimSpace(event.Query)})
		}
	})
}
