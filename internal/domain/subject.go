package domain

import (
	"math"
	"strings"
	"time"
)

const (
	DefaultSubjectName  = "Untitled"
	DefaultDifficulty   = 3
	DefaultPreparedness = 3
	DefaultChapters     = 5

	MinRating = 1
	MaxRating = 5
)

// Subject is a single exam the learner is preparing for.
type Subject struct {
	ID           string
	Name         string
	ExamDate     time.Time
	Difficulty   int // 1 = easiest
	Preparedness int // 5 = most prepared
	Chapters     int // remaining chapters/topics
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyDefaults fills the fields the entry form would have pre-populated.
func (s *Subject) ApplyDefaults() {
	s.Name = strings.TrimSpace(CoalesceStr(s.Name, DefaultSubjectName))
	if s.Difficulty == 0 {
		s.Difficulty = DefaultDifficulty
	}
	if s.Preparedness == 0 {
		s.Preparedness = DefaultPreparedness
	}
}

// Validate checks the subject is fit to be scored. Scoring itself accepts
// out-of-range ratings, so this is the boundary where they are rejected.
func (s *Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("name", "must not be blank")
	}
	if s.ExamDate.IsZero() {
		return invalid("exam date", "is required")
	}
	if s.Difficulty < MinRating || s.Difficulty > MaxRating {
		return invalid("difficulty", "%d is outside %d-%d", s.Difficulty, MinRating, MaxRating)
	}
	if s.Preparedness < MinRating || s.Preparedness > MaxRating {
		return invalid("preparedness", "%d is outside %d-%d", s.Preparedness, MinRating, MaxRating)
	}
	if s.Chapters < 0 {
		return invalid("chapters", "%d must not be negative", s.Chapters)
	}
	return nil
}

// DaysUntilExam returns whole calendar days between today and the exam,
// both truncated to local midnight. Negative once the exam has passed.
func (s *Subject) DaysUntilExam(today time.Time) int {
	return CalendarDaysBetween(today, s.ExamDate)
}

// CalendarDaysBetween counts midnight boundaries from a to b in a's location.
func CalendarDaysBetween(a, b time.Time) int {
	loc := a.Location()
	ay, am, ad := a.Date()
	by, bm, bd := b.In(loc).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// CeilDaysUntil rounds the exact time from now to t up to whole days.
// Unlike CalendarDaysBetween it is sensitive to the time of day.
func CeilDaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}
