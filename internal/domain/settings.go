package domain

import "time"

const (
	DefaultTotalHours = 6.0
	DefaultDayStart   = 8
)

// Settings holds the planner inputs that persist between regenerations.
type Settings struct {
	TotalHours    float64
	MaxPerSubject float64 // 0 = unset
	StartDate     *time.Time
	UpdatedAt     time.Time
}

// DefaultSettings mirrors the dashboard's initial form values.
func DefaultSettings() *Settings {
	return &Settings{TotalHours: DefaultTotalHours}
}

func (s *Settings) Validate() error {
	if s.TotalHours <= 0 {
		return invalid("total hours", "%.2f must be positive", s.TotalHours)
	}
	if s.TotalHours > 24 {
		return invalid("total hours", "%.2f exceeds a day", s.TotalHours)
	}
	if s.MaxPerSubject < 0 {
		return invalid("max per subject", "%.2f must not be negative", s.MaxPerSubject)
	}
	return nil
}
