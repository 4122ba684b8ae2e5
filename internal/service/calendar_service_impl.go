package service

import (
	"context"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
	"github.com/alexanderramin/optistudy/internal/repository"
)

type calendarService struct {
	subjects  repository.SubjectRepo
	schedules repository.ScheduleRepo
	settings  repository.SettingsRepo
}

func NewCalendarService(
	subjects repository.SubjectRepo,
	schedules repository.ScheduleRepo,
	settings repository.SettingsRepo,
) CalendarService {
	return &calendarService{subjects: subjects, schedules: schedules, settings: settings}
}

// Month lays out exams and the latest plan's daily sessions. Sessions start
// at the configured start date, or today when none is set.
func (s *calendarService) Month(ctx context.Context, year int, month time.Month, now time.Time) (*insight.Month, error) {
	rows, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	st, err := settingsOrDefault(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	rec, err := latestScheduleOrNil(ctx, s.schedules)
	if err != nil {
		return nil, err
	}

	var allocs []domain.ScheduledSubject
	if rec != nil {
		allocs = rec.Allocations
	}
	var start time.Time
	if st.StartDate != nil {
		start = *st.StartDate
	}
	return insight.BuildMonth(year, month, subjectValues(rows), allocs, start, now), nil
}
