package insight

import (
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
)

type EventKind string

const (
	EventExam  EventKind = "exam"
	EventStudy EventKind = "study"
)

// MaxVisibleEvents is how many events a day cell shows before "+N more".
const MaxVisibleEvents = 3

type Event struct {
	Kind    EventKind
	Subject string
	Hours   float64
}

// Label is the one-line text shown in a day cell.
func (e Event) Label() string {
	if e.Kind == EventExam {
		return fmt.Sprintf("📝 %s Exam", e.Subject)
	}
	return fmt.Sprintf("%s · %.1fh", e.Subject, e.Hours)
}

type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Events  []Event
}

// Visible returns the events a cell shows and how many were hidden.
func (d Day) Visible() ([]Event, int) {
	if len(d.Events) <= MaxVisibleEvents {
		return d.Events, 0
	}
	return d.Events[:MaxVisibleEvents], len(d.Events) - MaxVisibleEvents
}

type Month struct {
	Year  int
	Month time.Month
	Days  []Day // 35 or 42 cells, weeks start on Sunday
}

func (m *Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Weeks splits the grid into rows of seven.
func (m *Month) Weeks() [][]Day {
	var weeks [][]Day
	for i := 0; i+7 <= len(m.Days); i += 7 {
		weeks = append(weeks, m.Days[i:i+7])
	}
	return weeks
}

// BuildMonth lays out a month grid with exam days and the daily study
// sessions of the current plan. Study sessions run from startDate up to the
// day before each subject's exam; subjects with no hours are skipped. A zero
// startDate means today.
func BuildMonth(year int, month time.Month, subjects []domain.Subject, allocs []domain.ScheduledSubject, startDate, today time.Time) *Month {
	events := make(map[string][]Event)
	for _, s := range subjects {
		if s.ExamDate.IsZero() {
			continue
		}
		k := dayKey(s.ExamDate)
		events[k] = append(events[k], Event{Kind: EventExam, Subject: s.Name})
	}

	if startDate.IsZero() {
		startDate = today
	}
	start := midnight(startDate)
	for _, a := range allocs {
		if a.ExamDate.IsZero() || a.Hours <= 0 {
			continue
		}
		exam := midnight(a.ExamDate)
		for d := start; d.Before(exam); d = d.AddDate(0, 0, 1) {
			k := dayKey(d)
			events[k] = append(events[k], Event{Kind: EventStudy, Subject: a.Name, Hours: a.Hours})
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := dayKey(today)

	m := &Month{Year: year, Month: month}
	for i := lead; i > 0; i-- {
		m.Days = append(m.Days, Day{Date: first.AddDate(0, 0, -i)})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		k := dayKey(date)
		m.Days = append(m.Days, Day{Date: date, InMonth: true, IsToday: k == todayKey, Events: events[k]})
	}
	size := 35
	if len(m.Days) > 35 {
		size = 42
	}
	last := first.AddDate(0, 1, 0)
	for i := 0; len(m.Days) < size; i++ {
		m.Days = append(m.Days, Day{Date: last.AddDate(0, 0, i)})
	}
	return m
}

// Events returns the events on one calendar day.
func (m *Month) Events(date time.Time) []Event {
	k := dayKey(date)
	for _, d := range m.Days {
		if d.InMonth && dayKey(d.Date) == k {
			return d.Events
		}
	}
	return nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
