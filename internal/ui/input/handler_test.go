package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchbar/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSearchModeLeavesTypingToSearchBox(t *testing.T) {
	h := New()
	ctx := ModelContext{Results: 3, Page: 10}

	for _, msg := range []tea.KeyMsg{runes("q"), runes("j"), {Type: tea.KeyEnter}, {Type: tea.KeyEsc}, {Type: tea.KeyDown}} {
		actions, consumed := h.HandleKey(msg, ctx)
		assert.False(t, consumed, msg.String())
		assert.Empty(t, actions)
	}
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestSearchModeCtrlCQuits(t *testing.T) {
	h := New()
	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ModelContext{})
	require.True(t, consumed)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestSearchModeCtrlRRecallsHistory(t *testing.T) {
	h := New()
	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR}, ModelContext{})
	require.True(t, consumed)
	assert.Equal(t, []types.Action{types.RecallHistoryAction{}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestTabSwitchesModes(t *testing.T) {
	h := New()

	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ModelContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions, "no results to browse")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())

	ctx := ModelContext{Results: 2}
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, actions)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())
	assert.Equal(t, "browse", h.ModeName())

	actions, _ = h.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestBrowseModeKeys(t *testing.T) {
	ctx := ModelContext{Results: 20, Page: 6}
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []types.Action
	}{
		{"j", runes("j"), []types.Action{types.MoveCursorAction{Delta: 1}}},
		{"k", runes("k"), []types.Action{types.MoveCursorAction{Delta: -1}}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, []types.Action{types.MoveCursorAction{Delta: 1}}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, []types.Action{types.MoveCursorAction{Delta: 5}}},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, []types.Action{types.MoveCursorAction{Delta: -5}}},
		{"g", runes("g"), []types.Action{types.JumpAction{}}},
		{"G", runes("G"), []types.Action{types.JumpAction{Bottom: true}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []types.Action{types.OpenResultsAction{}}},
		{"o", runes("o"), []types.Action{types.OpenResultsAction{}}},
		{"?", runes("?"), []types.Action{types.ShowHelpAction{}}},
		{"r", runes("r"), []types.Action{types.ReloadCatalogAction{}}},
		{"s", runes("s"), []types.Action{types.SortResultsAction{}}},
		{"q", runes("q"), []types.Action{types.QuitAction{}}},
		{"x", runes("x"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			h.SetMode(types.ModeBrowse)
			actions, consumed := h.HandleKey(tt.msg, ctx)
			assert.True(t, consumed)
			assert.Equal(t, tt.want, actions)
		})
	}
}

func TestBrowseModeOpenNeedsResults(t *testing.T) {
	h := New()
	h.SetMode(types.ModeBrowse)
	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ModelContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, consumed = h.HandleKey(runes("s"), ModelContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions, "nothing to sort")
}

type recordingMode struct {
	entered, exited int
}

func (m *recordingMode) HandleKey(tea.KeyMsg, types.Context) ([]types.Action, bool) {
	return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
}
func (m *recordingMode) Enter(types.Context) []types.Action { m.entered++; return nil }
func (m *recordingMode) Exit(types.Context) []types.Action  { m.exited++; return nil }
func (m *recordingMode) Name() string                       { return "recording" }

func TestModeEnterExitHooks(t *testing.T) {
	h := New()
	rec := &recordingMode{}
	h.RegisterMode(types.ModeBrowse, rec)

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ModelContext{Results: 1})
	assert.Equal(t, 1, rec.entered)

	h.HandleKey(runes("x"), ModelContext{Results: 1})
	assert.Equal(t, 1, rec.exited)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}
