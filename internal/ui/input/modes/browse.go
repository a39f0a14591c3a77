package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchbar/internal/ui/input/types"
)

// BrowseMode moves through the result list
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case tea.KeyDown:
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.MoveCursorAction{Delta: -page(ctx)}}, true

	case tea.KeyPgDown:
		return []types.Action{types.MoveCursorAction{Delta: page(ctx)}}, true

	case tea.KeyHome:
		return []types.Action{types.JumpAction{}}, true

	case tea.KeyEnd:
		return []types.Action{types.JumpAction{Bottom: true}}, true

	case tea.KeyEnter:
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenResultsAction{}}, true

	case tea.KeyTab, tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case "k":
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case "g":
		return []types.Action{types.JumpAction{}}, true

	case "G":
		return []types.Action{types.JumpAction{Bottom: true}}, true

	case "o":
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenResultsAction{}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "r":
		return []types.Action{types.ReloadCatalogAction{}}, true

	case "s":
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.SortResultsAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	// Everything else is swallowed so stray letters never reach the search box
	return nil, true
}

func page(ctx types.Context) int {
	if n := ctx.PageSize(); n > 1 {
		return n - 1
	}
	return 1
}
