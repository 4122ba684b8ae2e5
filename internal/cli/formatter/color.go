package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyStyle colours exam countdowns: red within three days, yellow
// within a week.
func UrgencyStyle(level domain.UrgencyLevel) lipgloss.Style {
	switch level {
	case domain.UrgencyUrgent:
		return StyleRed
	case domain.UrgencyModerate:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// NotificationStyle matches the alert kind.
func NotificationStyle(kind domain.NotificationKind) lipgloss.Style {
	switch kind {
	case domain.NotifyUrgent:
		return StyleRed
	case domain.NotifyWarning:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// Header renders an upper-cased section title with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
