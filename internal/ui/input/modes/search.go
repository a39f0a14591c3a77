package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchbar/internal/ui/input/types"
)

// SearchMode leaves almost every key to the search box
type SearchMode struct{}

func NewSearchMode() *SearchMode {
	return &SearchMode{}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab":
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	case "ctrl+r":
		return []types.Action{types.RecallHistoryAction{}}, true
	}
	return nil, false
}
