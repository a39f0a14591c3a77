package searchbar

// SearchErrorMsg reports a failed search started by picking a suggestion.
// Submitted searches never produce it; their failures are only logged.
type SearchErrorMsg struct {
	ID    int
	Query string
	Err   error
}

func (m SearchErrorMsg) Error() string {
	return m.Err.Error()
}

// blurExpiredMsg fires when the grace period after a blur ends
type blurExpiredMsg struct {
	id  int
	seq int
}

// searchDoneMsg carries the outcome of a submitted search
type searchDoneMsg struct {
	id    int
	query string
	err   error
}
