package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubject() Subject {
	return Subject{
		Name:         "Calculus",
		ExamDate:     time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Difficulty:   4,
		Preparedness: 2,
		Chapters:     8,
	}
}

func TestSubject_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Subject)
		field  string
	}{
		{"valid", func(*Subject) {}, ""},
		{"blank name", func(s *Subject) { s.Name = "   " }, "name"},
		{"missing exam date", func(s *Subject) { s.ExamDate = time.Time{} }, "exam date"},
		{"difficulty too low", func(s *Subject) { s.Difficulty = 0 }, "difficulty"},
		{"difficulty too high", func(s *Subject) { s.Difficulty = 6 }, "difficulty"},
		{"preparedness too high", func(s *Subject) { s.Preparedness = 9 }, "preparedness"},
		{"negative chapters", func(s *Subject) { s.Chapters = -1 }, "chapters"},
		{"zero chapters allowed", func(s *Subject) { s.Chapters = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validSubject()
			tc.mutate(&s)
			err := s.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestSubject_ApplyDefaults(t *testing.T) {
	s := Subject{Name: "  "}
	s.ApplyDefaults()

	assert.Equal(t, DefaultSubjectName, s.Name)
	assert.Equal(t, DefaultDifficulty, s.Difficulty)
	assert.Equal(t, DefaultPreparedness, s.Preparedness)
}

func TestCalendarDaysBetween(t *testing.T) {
	today := time.Date(2025, 3, 15, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, CalendarDaysBetween(today, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, CalendarDaysBetween(today, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, CalendarDaysBetween(today, time.Date(2025, 3, 13, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 17, CalendarDaysBetween(today, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCeilDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CeilDaysUntil(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, CeilDaysUntil(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -2, CeilDaysUntil(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), now))
}
