package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Navigation actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// JumpAction moves the cursor to the first or last result
type JumpAction struct {
	Bottom bool
}

func (a JumpAction) Type() string { return "jump" }

// Command actions
type OpenResultsAction struct{}

func (a OpenResultsAction) Type() string { return "open_results" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ReloadCatalogAction struct{}

func (a ReloadCatalogAction) Type() string { return "reload_catalog" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// SortResultsAction cycles the result ordering
type SortResultsAction struct{}

func (a SortResultsAction) Type() string { return "sort_results" }

// RecallHistoryAction replaces the query with an earlier one from history
type RecallHistoryAction struct{}

func (a RecallHistoryAction) Type() string { return "recall_history" }
