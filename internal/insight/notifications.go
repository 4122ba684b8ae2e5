// Package insight derives the read-only views shown around a study plan:
// exam alerts, plan explanations, the day timeline and the month calendar.
// Everything here is a pure function of its inputs.
package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
)

// Notification priorities; lower sorts first.
const (
	PriorityOverdue     = 0
	PriorityImminent    = 1
	PriorityHardAndWeak = 1.5
	PriorityWithin3Days = 2
	PriorityWithinWeek  = 3
	PriorityLowPrepared = 4
)

const (
	lowPreparedness       = 2
	highDifficulty        = 4
	lowPrepWindowDays     = 14
	hardAndWeakWindowDays = 10
)

type Notification struct {
	Kind        domain.NotificationKind
	Icon        string
	SubjectID   string
	SubjectName string
	Message     string
	When        string
	Priority    float64
}

// Notifications builds exam alerts for every subject, most pressing first.
// Day counts use calendar days from today's midnight.
func Notifications(subjects []domain.Subject, today time.Time) []Notification {
	var out []Notification
	for _, s := range subjects {
		days := s.DaysUntilExam(today)
		examStr := s.ExamDate.Format("Jan 2")
		add := func(kind domain.NotificationKind, icon, when string, prio float64, format string, args ...any) {
			out = append(out, Notification{
				Kind:        kind,
				Icon:        icon,
				SubjectID:   s.ID,
				SubjectName: s.Name,
				Message:     fmt.Sprintf(format, args...),
				When:        when,
				Priority:    prio,
			})
		}

		switch {
		case days < 0:
			add(domain.NotifyUrgent, "🚨", "Overdue", PriorityOverdue,
				"%s exam was on %s, %s ago!", s.Name, examStr, pluralDays(-days))
		case days <= 1:
			when := "tomorrow"
			if days == 0 {
				when = "TODAY"
			}
			add(domain.NotifyUrgent, "🔴", examStr, PriorityImminent, "%s exam is %s!", s.Name, when)
		case days <= 3:
			add(domain.NotifyWarning, "⚠️", examStr, PriorityWithin3Days,
				"%s exam in %d days, make sure you're prepared!", s.Name, days)
		case days <= 7:
			add(domain.NotifyInfo, "📅", examStr, PriorityWithinWeek,
				"%s exam coming up in %d days", s.Name, days)
		}

		if s.Preparedness <= lowPreparedness && days > 0 && days <= lowPrepWindowDays {
			add(domain.NotifyWarning, "📉", fmt.Sprintf("Exam in %dd", days), PriorityLowPrepared,
				"%s has low preparedness (%d/5), consider studying more", s.Name, s.Preparedness)
		}
		if s.Difficulty >= highDifficulty && s.Preparedness <= lowPreparedness && days > 0 && days <= hardAndWeakWindowDays {
			add(domain.NotifyUrgent, "🔥", fmt.Sprintf("%dd left", days), PriorityHardAndWeak,
				"%s is high difficulty + low prep, needs urgent attention!", s.Name)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
