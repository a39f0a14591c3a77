package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"searchbar/internal/domain"
)

// DefaultSource names the embedded catalog in events and status lines
const DefaultSource = "built-in"

//go:embed default_catalog.toml
var defaultCatalog []byte

type catalogFile struct {
	Items []domain.Item `toml:"items"`
}

// Parse decodes a TOML catalog and drops items without a name
func Parse(data []byte) ([]domain.Item, error) {
	var f catalogFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	items := make([]domain.Item, 0, len(f.Items))
	for _, item := range f.Items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Load reads a catalog file from disk
func Load(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// LoadDefault returns the embedded demo catalog
func LoadDefault() []domain.Item {
	items, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return items
}

// Store is an in-memory, concurrency-safe product catalog
type Store struct {
	mu      sync.RWMutex
	items   []domain.Item
	latency time.Duration
}

// NewStore creates a store holding items
func NewStore(items []domain.Item) *Store {
	s := &Store{}
	s.Replace(items)
	return s
}

// SetLatency makes every Search wait d before answering
func (s *Store) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// Replace swaps the catalog contents
func (s *Store) Replace(items []domain.Item) {
	cp := make([]domain.Item, len(items))
	copy(cp, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cp
}

// Len returns the number of items
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of the catalog contents
func (s *Store) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Item, len(s.items))
	copy(result, s.items)
	return result
}
