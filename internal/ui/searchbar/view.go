package searchbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"searchbar/internal/ui/views"
)

// The input row is laid out as icon | field | gap | trailing cell
const (
	iconCells     = 2
	gapCells      = 1
	trailingCells = 2
)

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

func (m Model) fieldWidth() int {
	return max(m.width-iconCells-gapCells-trailingCells, 1)
}

// View renders the box and, when visible, the suggestion panel below it
func (m Model) View() string {
	rows := []string{m.inputRow()}
	if m.PanelVisible() {
		rows = append(rows, m.panel())
	}
	return m.style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) inputRow() string {
	icon := lipgloss.NewStyle().Width(iconCells).Render(m.styles.Icon.Render(views.Icon(views.IconSearch)))
	field := lipgloss.NewStyle().
		Width(m.fieldWidth()).
		MaxWidth(m.fieldWidth()).
		Render(m.input.View())

	// The spinner and the clear button share one cell and never show together
	var trailing string
	switch {
	case m.state.searching:
		trailing = m.spinner.View()
	case m.CanClear():
		trailing = m.styles.Clear.Render(views.Icon(views.IconClear))
	}
	trailing = lipgloss.NewStyle().Width(trailingCells).Render(trailing)

	return lipgloss.JoinHorizontal(lipgloss.Top, icon, field, strings.Repeat(" ", gapCells), trailing)
}

func (m Model) panel() string {
	inner := max(m.width-m.styles.Panel.GetHorizontalFrameSize(), 1)
	visible := m.Suggestions()
	lines := make([]string, 0, len(visible))
	for i, s := range visible {
		text := ansi.Truncate(views.Icon(views.IconSearch)+" "+s, inner, "…")
		style := views.Merge(m.styles.Suggestion, views.When(i == m.cursor, m.styles.Selected))
		lines = append(lines, style.Width(inner).Render(text))
	}
	return m.styles.Panel.Width(inner + m.styles.Panel.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// contentOrigin is the screen position of the input row's first cell
func (m Model) contentOrigin() (int, int) {
	x := m.originX + m.style.GetMarginLeft() + m.style.GetBorderLeftSize() + m.style.GetPaddingLeft()
	y := m.originY + m.style.GetMarginTop() + m.style.GetBorderTopSize() + m.style.GetPaddingTop()
	return x, y
}

// suggestionAt maps a screen position to a visible suggestion index, or -1
func (m Model) suggestionAt(x, y int) int {
	if !m.PanelVisible() {
		return -1
	}
	cx, cy := m.contentOrigin()
	p := m.styles.Panel
	left := cx + p.GetMarginLeft() + p.GetBorderLeftSize() + p.GetPaddingLeft()
	top := cy + 1 + p.GetMarginTop() + p.GetBorderTopSize() + p.GetPaddingTop()
	inner := max(m.width-p.GetHorizontalFrameSize(), 1)
	if x < left || x >= left+inner {
		return -1
	}
	i := y - top
	if i < 0 || i >= len(m.Suggestions()) {
		return -1
	}
	return i
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	cx, cy := m.contentOrigin()

	if i := m.suggestionAt(msg.X, msg.Y); i >= 0 {
		cmd := m.SelectSuggestion(m.Suggestions()[i])
		return m, cmd
	}

	if msg.Y == cy && msg.X >= cx && msg.X < cx+m.width {
		clearX := cx + iconCells + m.fieldWidth() + gapCells
		if msg.X >= clearX && msg.X < clearX+trailingCells && m.CanClear() {
			m.Clear()
			return m, nil
		}
		if m.input.Focused() {
			return m, nil
		}
		cmd := m.Focus()
		return m, cmd
	}

	cmd := m.Blur()
	return m, cmd
}
