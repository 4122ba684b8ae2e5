package insight

import (
	"fmt"
	"math"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/samber/lo"
)

// Reasons lists every factor that pushed a subject's allocation up.
func Reasons(s domain.ScheduledSubject) []string {
	var r []string
	switch {
	case s.DaysRemaining <= 3:
		r = append(r, fmt.Sprintf("Exam imminent (%dd away)", s.DaysRemaining))
	case s.DaysRemaining <= 7:
		r = append(r, fmt.Sprintf("Near exam date (%dd)", s.DaysRemaining))
	}
	if s.Difficulty >= 4 {
		r = append(r, fmt.Sprintf("High difficulty (%d/5)", s.Difficulty))
	}
	if s.Preparedness <= 2 {
		r = append(r, fmt.Sprintf("Low preparedness (%d/5)", s.Preparedness))
	}
	if s.WeaknessFactor >= 2 {
		r = append(r, "Large weakness gap")
	}
	if s.Chapters >= 6 {
		r = append(r, fmt.Sprintf("Heavy workload (%d chapters)", s.Chapters))
	}
	if len(r) == 0 {
		r = append(r, "Balanced across all metrics")
	}
	return r
}

// PrimaryReason is the single strongest driver, checked in fixed order.
func PrimaryReason(s domain.ScheduledSubject) string {
	switch {
	case s.DaysRemaining <= 3:
		return fmt.Sprintf("exam very soon (%dd)", s.DaysRemaining)
	case s.WeaknessFactor >= 2:
		return "weakness gap"
	case s.Chapters >= 6:
		return fmt.Sprintf("heavy workload (%d ch.)", s.Chapters)
	case s.DaysRemaining <= 7:
		return fmt.Sprintf("exam in %dd", s.DaysRemaining)
	default:
		return "balanced priority"
	}
}

// Explanation is the plain-text account of why the plan looks the way it does.
type Explanation struct {
	Headline string
	Reasons  []string
	Others   []string
	Footer   string
}

// Explain describes a plan whose allocations are already sorted by hours.
// maxShare is the fraction of the budget any one subject may take and
// minHours the floor each subject receives.
func Explain(allocs []domain.ScheduledSubject, maxShare, minHours float64) *Explanation {
	if len(allocs) == 0 {
		return nil
	}
	top := allocs[0]
	e := &Explanation{
		Headline: fmt.Sprintf("%s received the highest allocation (%.1f hours) due to:", top.Name, top.Hours),
		Reasons:  Reasons(top),
		Footer: fmt.Sprintf("The schedule enforces a %d%% max cap and %d-minute minimum per subject to prevent burnout.",
			int(math.Round(maxShare*100)), int(math.Round(minHours*60))),
	}
	if len(allocs) > 1 {
		e.Others = lo.Map(allocs[1:], func(s domain.ScheduledSubject, _ int) string {
			return fmt.Sprintf("%s (%.1fh): %s", s.Name, s.Hours, PrimaryReason(s))
		})
	}
	return e
}
