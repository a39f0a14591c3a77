package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"searchbar/internal/eventbus"
)

// ErrTimeout is returned when the catalog did not answer within the timeout
var ErrTimeout = errors.New("search timed out")

// Service is the search callback handed to the search box. It queries the
// catalog and reports progress on the event bus.
type Service struct {
	source  Searcher
	bus     eventbus.EventBus
	timeout time.Duration
	logger  zerolog.Logger

	mu    sync.RWMutex
	state State
}

// NewService creates a new search service. A timeout <= 0 disables it.
func NewService(source Searcher, bus eventbus.EventBus, timeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		source:  source,
		bus:     bus,
		timeout: timeout,
		logger:  logger,
	}
}

// Search runs query and publishes SearchStarted followed by either
// SearchCompleted or SearchFailed. The error is returned as well.
func (s *Service) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	s.bus.Publish(eventbus.SearchStartedEvent{Query: query})

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	items, err := s.source.Search(ctx, query)
	took := time.Since(start)

	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
	}

	s.mu.Lock()
	s.state = State{Query: query, Results: len(items), Took: took, Err: err}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("search failed")
		s.bus.Publish(eventbus.SearchFailedEvent{Query: query, Err: err})
		return fmt.Errorf("search %q: %w", query, err)
	}

	s.logger.Debug().Str("query", query).Int("results", len(items)).Dur("took", took).Msg("search completed")
	s.bus.Publish(eventbus.SearchCompletedEvent{Query: query, Items: items, Took: took})
	return nil
}

// Last returns the outcome of the most recent search
func (s *Service) Last() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
