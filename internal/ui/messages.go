package ui

import (
	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// catalogLoadedMsg carries a freshly read catalog
type catalogLoadedMsg struct {
	source string
	items  []domain.Item
	err    error
}

// pagerMsg is sent when the pager exits
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the status line if nothing replaced it meanwhile
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
