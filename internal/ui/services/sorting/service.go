package sorting

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"searchbar/internal/domain"
)

// modes is the cycle order used by NextMode
var modes = []Mode{ByRelevance, ByName, ByPrice, ByCategory}

// Service keeps the result ordering chosen by the user
type Service struct {
	mode   Mode
	logger zerolog.Logger
}

// NewService creates a sorting service that starts in relevance order
func NewService(logger zerolog.Logger) *Service {
	return &Service{mode: ByRelevance, logger: logger}
}

// Mode returns the current sort mode
func (s *Service) Mode() Mode {
	return s.mode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode Mode) {
	if mode == s.mode {
		return
	}
	s.logger.Debug().Stringer("from", s.mode).Stringer("to", mode).Msg("sort mode changed")
	s.mode = mode
}

// NextMode cycles to the next sort mode and returns it
func (s *Service) NextMode() Mode {
	current := 0
	for i, mode := range modes {
		if mode == s.mode {
			current = i
			break
		}
	}
	s.SetMode(modes[(current+1)%len(modes)])
	return s.mode
}

// Sort returns a sorted copy of items; ties keep their catalog order.
func (s *Service) Sort(items []domain.Item) []domain.Item {
	if items == nil {
		return nil
	}
	out := make([]domain.Item, len(items))
	copy(out, items)

	switch s.mode {
	case ByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case ByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case ByCategory:
		sort.SliceStable(out, func(i, j int) bool {
			ci, cj := strings.ToLower(out[i].Category), strings.ToLower(out[j].Category)
			if ci != cj {
				return ci < cj
			}
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}
