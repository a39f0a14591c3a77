package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"searchbar/internal/domain"
)

// ErrEmptyQuery is returned when a search is asked for blank text
var ErrEmptyQuery = errors.New("empty query")

const (
	rankField  = 1 // every term matched somewhere
	rankInName = 2 // whole query inside the name
	rankPrefix = 3 // name starts with the query
)

// Search returns items matching every whitespace-separated term of query.
// Name prefix matches rank first, then name substring matches, then
// category and tag matches; ties are ordered by name.
func (s *Store) Search(ctx context.Context, query string) ([]domain.Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	latency := s.latency
	items := make([]domain.Item, len(s.items))
	copy(items, s.items)
	s.mu.RUnlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	terms := strings.Fields(q)
	type ranked struct {
		item domain.Item
		rank int
	}
	var matches []ranked
	for _, item := range items {
		if r := rank(item, q, terms); r > 0 {
			matches = append(matches, ranked{item: item, rank: r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank > matches[j].rank
		}
		return strings.ToLower(matches[i].item.Name) < strings.ToLower(matches[j].item.Name)
	})

	result := make([]domain.Item, len(matches))
	for i, m := range matches {
		result[i] = m.item
	}
	return result, nil
}

func rank(item domain.Item, query string, terms []string) int {
	name := strings.ToLower(item.Name)
	for _, term := range terms {
		if !matchesTerm(item, name, term) {
			return 0
		}
	}
	switch {
	case strings.HasPrefix(name, query):
		return rankPrefix
	case strings.Contains(name, query):
		return rankInName
	default:
		return rankField
	}
}

func matchesTerm(item domain.Item, lowerName, term string) bool {
	if strings.Contains(lowerName, term) || strings.Contains(strings.ToLower(item.Category), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Suggest returns up to limit item names containing query, prefix matches
// first and catalog order otherwise. A limit <= 0 means no limit.
func (s *Store) Suggest(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var prefix, inside []string
	for _, item := range s.items {
		name := strings.ToLower(item.Name)
		switch {
		case strings.HasPrefix(name, q):
			prefix = append(prefix, item.Name)
		case strings.Contains(name, q):
			inside = append(inside, item.Name)
		}
	}

	result := append(prefix, inside...)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
