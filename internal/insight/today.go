package insight

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/samber/lo"
)

// TimeBlock is one subject's slot in today's back-to-back timeline.
// Start and End are fractional hours of the day.
type TimeBlock struct {
	SubjectID  string
	Name       string
	Hours      float64
	Start      float64
	End        float64
	StartLabel string
	EndLabel   string
	Done       bool
}

// TodayPlan lays allocations end to end from startHour. A block counts as
// done once the current hour has reached its end.
func TodayPlan(allocs []domain.ScheduledSubject, startHour float64, now time.Time) []TimeBlock {
	blocks := make([]TimeBlock, 0, len(allocs))
	cursor := startHour
	for _, a := range allocs {
		end := cursor + a.Hours
		blocks = append(blocks, TimeBlock{
			SubjectID:  a.SubjectID,
			Name:       a.Name,
			Hours:      a.Hours,
			Start:      cursor,
			End:        end,
			StartLabel: FormatClock(cursor),
			EndLabel:   FormatClock(end),
			Done:       float64(now.Hour()) >= end,
		})
		cursor = end
	}
	return blocks
}

// DoneCount counts finished blocks.
func DoneCount(blocks []TimeBlock) int {
	return lo.CountBy(blocks, func(b TimeBlock) bool { return b.Done })
}

// FormatClock renders fractional hours as a 12-hour "h:mm AM" label.
func FormatClock(h float64) string {
	hr := int(math.Floor(h))
	min := int(math.Round((h - float64(hr)) * 60))
	if min == 60 {
		hr++
		min = 0
	}
	hr %= 24
	ampm := "AM"
	if hr >= 12 {
		ampm = "PM"
	}
	h12 := hr % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, min, ampm)
}
