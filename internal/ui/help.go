package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	minChars int
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(minChars int) *HelpRenderer {
	return &HelpRenderer{minChars: minChars}
}

type helpLine struct {
	keys string
	desc string
}

// renderHelpContent renders the help information shown in the pager
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []struct {
		name  string
		lines []helpLine
	}{
		{"Search box", []helpLine{
			{"type", fmt.Sprintf("Suggestions appear after %d characters", r.minChars+1)},
			{"enter", "Search, or pick the highlighted suggestion"},
			{"↑/↓, C-p/C-n", "Move through suggestions"},
			{"esc", "Clear the query"},
			{"ctrl+r", "Recall an earlier query from history"},
			{"tab", "Go to the results"},
			{"click", "Focus, clear or pick a suggestion"},
		}},
		{"Results", []helpLine{
			{"↑/↓, j/k", "Move up/down"},
			{"PgUp/PgDn", "Page up/down"},
			{"g/G", "Go to top/bottom"},
			{"enter, o", "Open the results in the pager"},
			{"/, tab, esc", "Back to the search box"},
			{"s", "Sort by relevance, name, price or category"},
			{"r", "Reload the catalog"},
		}},
		{"Other", []helpLine{
			{"?", "Show this help"},
			{"q", "Quit (from the results)"},
			{"ctrl+c", "Quit"},
		}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("searchbar help"))
	help.WriteString("\n")
	for _, section := range sections {
		help.WriteString(sectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, line := range section.lines {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(line.keys), descStyle.Render(line.desc)))
		}
	}
	return strings.TrimRight(help.String(), "\n")
}
