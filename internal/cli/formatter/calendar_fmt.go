package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/insight"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 16

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatMonth draws the month as a seven-column grid. Each cell lists up to
// insight.MaxVisibleEvents events and a "+N more" line.
func FormatMonth(m *insight.Month) string {
	cell := lipgloss.NewStyle().Width(cellWidth).MaxWidth(cellWidth)

	var b strings.Builder
	b.WriteString(Header(m.Title()))
	b.WriteString("\n")

	heads := make([]string, len(weekdayNames))
	for i, d := range weekdayNames {
		heads[i] = cell.Render(StyleBold.Render(d))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, heads...))
	b.WriteString("\n")

	for _, week := range m.Weeks() {
		cols := make([]string, len(week))
		for i, day := range week {
			cols[i] = cell.Render(renderDay(day))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDay(d insight.Day) string {
	num := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case d.IsToday:
		num = StyleHeader.Render(num + " ◆")
	case !d.InMonth:
		num = Dim(num)
	}
	lines := []string{num}
	visible, hidden := d.Visible()
	for _, e := range visible {
		label := truncate(e.Label(), cellWidth-1)
		if e.Kind == insight.EventExam {
			lines = append(lines, StyleRed.Render(label))
		} else {
			lines = append(lines, StyleBlue.Render(label))
		}
	}
	if hidden > 0 {
		lines = append(lines, Dim(fmt.Sprintf("+%d more", hidden)))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
