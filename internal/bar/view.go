package bar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBar lays out the widget row, the sparkline for the selected widget,
// and the footer.
func (m Model) renderBar() string {
	var sections []string

	sections = append(sections, m.renderWidgetRow())

	if spark := m.renderSparkRow(); spark != "" {
		sections = append(sections, spark)
	}

	if gauge := m.renderGaugeRow(); gauge != "" {
		sections = append(sections, gauge)
	}

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		sections = append(sections, m.renderFooter())
	}

	return strings.Join(sections, "\n")
}

// renderWidgetRow renders every widget's current text in one line.
// Widget text comes straight from the poll cells; a cell that failed this
// tick still shows its previous value, so the row never flickers.
func (m Model) renderWidgetRow() string {
	parts := make([]string, 0, len(m.widgets)*2)
	sep := SeparatorStyle.Render(WidgetSeparator)

	for i, w := range m.widgets {
		style := WidgetStyle.Foreground(w.Color)
		if i == m.selected {
			style = WidgetSelectedStyle.Foreground(w.Color)
		}
		if m.Stale() && w.Name != "clock" {
			style = StaleStyle.Padding(0, 1)
		}

		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, style.Render(w.Cell.Value()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if m.Stale() {
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, StaleStyle.Render(" (no data)"))
	}
	return row
}

// renderSparkRow renders the selected widget's sparkline, sized to roughly a
// third of the terminal width.
func (m Model) renderSparkRow() string {
	w := m.SelectedWidget()
	if w == nil || w.Spark == nil {
		return ""
	}

	width := m.width / 3
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}

	spark := w.Spark(width)
	if spark == "" {
		return ""
	}
	return WidgetStyle.Render(spark)
}

// renderGaugeRow renders the memory gauge when a snapshot is available.
func (m Model) renderGaugeRow() string {
	snap, ok := m.source.Last()
	if !ok {
		return ""
	}
	gauge := m.memGauge.ViewAs(snap.Memory.UsedPercentage / 100)
	return WidgetStyle.Render("mem " + gauge)
}

func (m Model) renderFooter() string {
	return FooterStyle.Render("←/→ select · g graph · ? help · q quit")
}

func (m Model) renderHelp() string {
	lines := []string{
		"tab, ←/→, h/l   select widget",
		"g, enter        open graph window for selection",
		"?               toggle this help",
		"esc             close help",
		"q, ctrl+c       quit",
	}
	return FooterStyle.Render(strings.Join(lines, "\n"))
}
