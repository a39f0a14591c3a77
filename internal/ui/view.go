package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"searchbar/internal/domain"
	inputtypes "searchbar/internal/ui/input/types"
	"searchbar/internal/ui/views"
)

func (m *Model) renderTitle() string {
	title := "searchbar"
	if m.e2e && m.width > 0 {
		title += " " + readyMarker
	}
	return m.styles.Title.Render(title)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	main := m.styles.Main
	inner := max(m.width-main.GetHorizontalFrameSize(), 1)

	header := lipgloss.JoinVertical(lipgloss.Left, m.renderTitle(), m.bar.View())
	footer := lipgloss.JoinVertical(lipgloss.Left, m.renderStatus(inner), m.styles.Help.Render(m.help.View(m.helpKeys())))

	m.listHeight = max(m.height-main.GetVerticalFrameSize()-lipgloss.Height(header)-lipgloss.Height(footer)-1, 1)
	m.ensureSelectedVisible()

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderResults(inner), footer)
	return main.Render(body)
}

func (m *Model) renderResults(width int) string {
	if len(m.results) == 0 {
		if m.resultQuery != "" {
			return m.styles.Dim.Render(fmt.Sprintf("No products match %q", m.resultQuery))
		}
		return m.styles.Dim.Render(m.bar.HelpText())
	}

	browsing := m.inputHandler.CurrentMode() == inputtypes.ModeBrowse
	end := min(m.offset+m.visibleRows(), len(m.results))
	lines := make([]string, 0, end-m.offset+1)
	for i := m.offset; i < end; i++ {
		line := m.renderItem(m.results[i], width)
		if browsing && i == m.cursor {
			line = views.Merge(m.styles.SelectionBg, m.styles.Highlight).Width(width).Render(ansi.Strip(line))
		}
		lines = append(lines, line)
	}
	if len(m.results) > m.listHeight {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(m.results))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderItem(item domain.Item, width int) string {
	icon := views.Icon(views.IconResult)
	line := fmt.Sprintf("%s %s  %s  %s",
		icon,
		item.Name,
		m.styles.Category.Render(item.Category),
		m.styles.Price.Render(fmt.Sprintf("$%.2f", item.Price)),
	)
	return ansi.Truncate(line, width, "…")
}

func (m *Model) renderStatus(width int) string {
	if m.status == "" {
		return m.styles.Status.Render(" ")
	}
	style := m.styles.Status
	if m.statusError {
		style = style.Foreground(m.styles.StatusError.GetForeground())
	}
	return style.Render(ansi.Truncate(m.status, width, "…"))
}

// renderResultsDocument renders the last results as plain text for the pager
func (m *Model) renderResultsDocument() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for %q (%s)\n\n", m.resultQuery, plural(len(m.results), "item"))
	for i, item := range m.results {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "     category: %s\n", item.Category)
		fmt.Fprintf(&b, "     price:    $%.2f\n", item.Price)
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "     tags:     %s\n", strings.Join(item.Tags, ", "))
		}
	}
	return b.String()
}
