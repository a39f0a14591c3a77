package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Category    lipgloss.Style
	Price       lipgloss.Style

	// search box
	Icon        lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Clear       lipgloss.Style
	Spinner     lipgloss.Style
	Panel       lipgloss.Style
	Suggestion  lipgloss.Style
	Selected    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),

		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Input:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Clear:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")),
	}
}

// Merge layers extras over base; properties set in a later style win.
// Margins and padding are not inherited by lipgloss, so they come from the
// last style only.
func Merge(base lipgloss.Style, extras ...lipgloss.Style) lipgloss.Style {
	if len(extras) == 0 {
		return base
	}
	out := extras[len(extras)-1]
	for i := len(extras) - 2; i >= 0; i-- {
		out = out.Inherit(extras[i])
	}
	return out.Inherit(base)
}

// When returns style if cond holds and an empty style otherwise
func When(cond bool, style lipgloss.Style) lipgloss.Style {
	if cond {
		return style
	}
	return lipgloss.NewStyle()
}
