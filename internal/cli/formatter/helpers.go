package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// TruncID shortens a UUID to the 8-character prefix commands accept.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes renders minutes as "1h 25m", "2h" or "40m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatHours renders fractional hours with one decimal, e.g. "2.4h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// Rating renders a 1-5 score as filled and empty dots.
func Rating(n int) string {
	if n < 0 {
		n = 0
	}
	if n > domain.MaxRating {
		n = domain.MaxRating
	}
	return strings.Repeat("●", n) + StyleDim.Render(strings.Repeat("○", domain.MaxRating-n))
}

// ChapterStatusPill is a coloured chapter status marker.
func ChapterStatusPill(status domain.ChapterStatus) string {
	switch status {
	case domain.ChapterNotStarted:
		return StyleBlue.Render("○ Not started")
	case domain.ChapterInProgress:
		return StyleYellow.Render("● In progress")
	case domain.ChapterCompleted:
		return StyleGreen.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}
