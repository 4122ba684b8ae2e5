package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampPct(pct float64) float64 {
	return min(max(pct, 0), 1)
}

func blocks(pct float64, width int) (int, int) {
	width = max(width, 2)
	filled := min(int(pct*float64(width)+0.5), width)
	return filled, width - filled
}

// RenderProgress renders "[████░░░░]  45%", green above two thirds, yellow
// above one third, red below.
func RenderProgress(pct float64, width int) string {
	pct = clampPct(pct)
	filled, empty := blocks(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderHoursBar draws hours against the per-subject cap without a
// percentage label.
func RenderHoursBar(hours, maxHours float64, width int) string {
	pct := 0.0
	if maxHours > 0 {
		pct = clampPct(hours / maxHours)
	}
	filled, empty := blocks(pct, width)
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
