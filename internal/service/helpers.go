package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/alexanderramin/optistudy/internal/scheduler"
	"github.com/samber/lo"
)

// subjectValues copies repository rows into the value slice the scheduler
// and insight functions take.
func subjectValues(subjects []*domain.Subject) []domain.Subject {
	return lo.Map(subjects, func(s *domain.Subject, _ int) domain.Subject { return *s })
}

// toScheduled flattens allocations into their stored form.
func toScheduled(allocs []scheduler.Allocation) []domain.ScheduledSubject {
	return lo.Map(allocs, func(a scheduler.Allocation, _ int) domain.ScheduledSubject {
		return domain.ScheduledSubject{
			SubjectID:       a.Subject.ID,
			Name:            a.Subject.Name,
			ExamDate:        a.Subject.ExamDate,
			Difficulty:      a.Subject.Difficulty,
			Preparedness:    a.Subject.Preparedness,
			Chapters:        a.Subject.Chapters,
			DaysRemaining:   a.DaysRemaining,
			Urgency:         a.Urgency,
			WeaknessFactor:  a.WeaknessFactor,
			WorkloadFactor:  a.WorkloadFactor,
			RawScore:        a.RawScore,
			NormalizedScore: a.NormalizedScore,
			Hours:           a.Hours,
			Locked:          a.Locked,
		}
	})
}

// latestScheduleOrNil treats a missing schedule as "none yet".
func latestScheduleOrNil(ctx context.Context, schedules repository.ScheduleRepo) (*domain.ScheduleRecord, error) {
	rec, err := schedules.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading latest schedule: %w", err)
	}
	return rec, nil
}

// settingsOrDefault falls back to the built-in defaults if the row is gone.
func settingsOrDefault(ctx context.Context, settings repository.SettingsRepo) (*domain.Settings, error) {
	s, err := settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

func nowOr(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}
