package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventHistoryRecorded EventType = "HistoryRecorded"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a query is handed to the catalog
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a query returns
type SearchCompletedEvent struct {
	Query string
	Items []Item
	Took  time.Duration
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a query fails or times out
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// CatalogLoadedEvent is emitted after the catalog contents are (re)loaded
type CatalogLoadedEvent struct {
	Source string
	Count  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// HistoryRecordedEvent is emitted after a query is added to the history
type HistoryRecordedEvent struct {
	Query string
}

func (e HistoryRecordedEvent) Type() EventType { return EventHistoryRecorded }

// ErrorEvent is emitted when an error occurs outside a search
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
