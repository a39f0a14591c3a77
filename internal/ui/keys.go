package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"searchbar/internal/ui/input/types"
	"searchbar/internal/ui/searchbar"
)

// browseKeys mirrors the bindings handled by the browse mode; it only feeds
// the help line
type browseKeys struct {
	Move   key.Binding
	Jump   key.Binding
	Open   key.Binding
	Search key.Binding
	Reload key.Binding
	Sort   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Move:   key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "move")),
		Jump:   key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("g/G", "top/bottom")),
		Open:   key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
		Search: key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "search")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.Search, k.Sort, k.Help, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move, k.Jump, k.Open}, {k.Search, k.Sort, k.Reload}, {k.Help, k.Quit}}
}

// searchKeys adds the mode switch and quit keys to the search box bindings
type searchKeys struct {
	bar    searchbar.KeyMap
	Browse key.Binding
	Recall key.Binding
	Quit   key.Binding
}

func newSearchKeys(bar searchbar.KeyMap) searchKeys {
	return searchKeys{
		bar:    bar,
		Browse: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results")),
		Recall: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k searchKeys) ShortHelp() []key.Binding {
	return append(k.bar.ShortHelp(), k.Browse, k.Quit)
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return append(k.bar.FullHelp(), []key.Binding{k.Browse, k.Recall, k.Quit})
}

func (m *Model) helpKeys() help.KeyMap {
	if m.inputHandler.CurrentMode() == types.ModeBrowse {
		return m.browseKeys
	}
	return m.searchKeys
}
