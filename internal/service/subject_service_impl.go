package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/google/uuid"
)

type subjectService struct {
	subjects repository.SubjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSubjectService(subjects repository.SubjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SubjectService {
	return &subjectService{subjects: subjects, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *subjectService) Add(ctx context.Context, subj *domain.Subject) error {
	subj.ApplyDefaults()
	if err := subj.Validate(); err != nil {
		return err
	}
	if subj.ID == "" {
		subj.ID = uuid.New().String()
	}
	existing, err := s.subjects.List(ctx)
	if err != nil {
		return err
	}
	subj.Position = len(existing)
	now := time.Now().UTC()
	subj.CreatedAt = now
	subj.UpdatedAt = now
	return s.subjects.Create(ctx, subj)
}

func (s *subjectService) Get(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectService) Update(ctx context.Context, subj *domain.Subject) error {
	subj.ApplyDefaults()
	if err := subj.Validate(); err != nil {
		return err
	}
	subj.UpdatedAt = time.Now().UTC()
	return s.subjects.Update(ctx, subj)
}

func (s *subjectService) Remove(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}

// ReplaceAll swaps the whole subject list atomically. Chapters of dropped
// subjects go with them.
func (s *subjectService) ReplaceAll(ctx context.Context, subjects []*domain.Subject) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"subject_count": len(subjects)}
	defer observe(ctx, s.observer, "replace-subjects", startedAt, fields, &err)

	now := time.Now().UTC()
	for i, subj := range subjects {
		subj.ApplyDefaults()
		if err = subj.Validate(); err != nil {
			return fmt.Errorf("subject %d: %w", i+1, err)
		}
		if subj.ID == "" {
			subj.ID = uuid.New().String()
		}
		subj.Position = i
		subj.CreatedAt = now
		subj.UpdatedAt = now
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSubjectRepo(tx).ReplaceAll(ctx, subjects)
	})
	return err
}

// demoSubjects is the six-subject sample scenario, exam dates relative to today.
var demoSubjects = []struct {
	name         string
	days         int
	difficulty   int
	preparedness int
	chapters     int
}{
	{"Calculus", 3, 5, 2, 8},
	{"Physics", 5, 4, 3, 6},
	{"Chemistry", 7, 4, 4, 5},
	{"Comp Science", 2, 3, 2, 4},
	{"History", 10, 2, 4, 3},
	{"English", 14, 1, 5, 2},
}

const (
	demoTotalHours    = 6
	demoMaxPerSubject = 3
)

// LoadDemo replaces every subject with the sample scenario and resets the
// planner settings to match it.
func (s *subjectService) LoadDemo(ctx context.Context, today time.Time) (subjects []*domain.Subject, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"subject_count": len(demoSubjects)}
	defer observe(ctx, s.observer, "load-demo", startedAt, fields, &err)

	y, m, d := today.Date()
	now := time.Now().UTC()
	for i, ds := range demoSubjects {
		subjects = append(subjects, &domain.Subject{
			ID:           uuid.New().String(),
			Name:         ds.name,
			ExamDate:     time.Date(y, m, d+ds.days, 0, 0, 0, 0, time.UTC),
			Difficulty:   ds.difficulty,
			Preparedness: ds.preparedness,
			Chapters:     ds.chapters,
			Position:     i,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSubjectRepo(tx).ReplaceAll(ctx, subjects); err != nil {
			return err
		}
		return repository.NewSQLiteSettingsRepo(tx).Upsert(ctx, &domain.Settings{
			TotalHours:    demoTotalHours,
			MaxPerSubject: demoMaxPerSubject,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("loading demo scenario: %w", err)
	}
	return subjects, nil
}
