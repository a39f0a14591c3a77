package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchbar/internal/ui/input/modes"
	"searchbar/internal/ui/input/types"
)

// Handler routes keys to the handler of the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeSearch,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeSearch] = modes.NewSearchMode()
	h.modes[types.ModeBrowse] = modes.NewBrowseMode()

	return h
}

// HandleKey returns the actions for msg and whether the key was consumed.
// Mode changes are applied here and also passed on so the caller can move
// focus. In search mode an unconsumed key belongs to the search box.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil, false
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		allActions = append(allActions, action)
	}

	return allActions, true
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSearch
	}
	return h.currentMode
}

// SetMode changes the mode without going through a key
func (h *Handler) SetMode(mode types.Mode) {
	h.currentMode = mode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return h.currentMode.String()
}
