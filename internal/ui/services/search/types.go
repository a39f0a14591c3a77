package search

import (
	"context"
	"time"

	"searchbar/internal/domain"
)

// Searcher runs a query against a product source
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Item, error)
}

// State holds the outcome of the most recent search
type State struct {
	Query   string
	Results int
	Took    time.Duration
	Err     error
}
