package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type chapterService struct {
	subjects repository.SubjectRepo
	chapters repository.ChapterRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewChapterService(
	subjects repository.SubjectRepo,
	chapters repository.ChapterRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ChapterService {
	return &chapterService{
		subjects: subjects,
		chapters: chapters,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// List returns a subject's chapters. A subject opened for the first time
// gets "Chapter 1".."Chapter N" generated from its chapter count.
func (s *chapterService) List(ctx context.Context, subjectID string) ([]*domain.Chapter, error) {
	existing, err := s.chapters.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	subj, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subj.Chapters == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	generated := make([]*domain.Chapter, 0, subj.Chapters)
	for n := 1; n <= subj.Chapters; n++ {
		generated = append(generated, &domain.Chapter{
			ID:        uuid.New().String(),
			SubjectID: subjectID,
			Name:      domain.DefaultChapterName(n),
			Number:    n,
			Status:    domain.ChapterNotStarted,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteChapterRepo(tx).ReplaceForSubject(ctx, subjectID, generated)
	})
	if err != nil {
		return nil, fmt.Errorf("generating chapters: %w", err)
	}
	return generated, nil
}

func (s *chapterService) Get(ctx context.Context, id string) (*domain.Chapter, error) {
	return s.chapters.GetByID(ctx, id)
}

// Add appends a chapter after the highest-numbered one. A blank name
// becomes "Chapter N".
func (s *chapterService) Add(ctx context.Context, subjectID, name string) (*domain.Chapter, error) {
	existing, err := s.List(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	next := 1
	if len(existing) > 0 {
		next = lo.MaxBy(existing, func(a, b *domain.Chapter) bool { return a.Number > b.Number }).Number + 1
	}

	now := time.Now().UTC()
	ch := &domain.Chapter{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Name:      strings.TrimSpace(domain.CoalesceStr(name, domain.DefaultChapterName(next))),
		Number:    next,
		Status:    domain.ChapterNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	if err := s.chapters.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *chapterService) Rename(ctx context.Context, id, name string) error {
	return s.mutate(ctx, id, func(ch *domain.Chapter) {
		ch.Name = strings.TrimSpace(name)
	})
}

func (s *chapterService) SetStatus(ctx context.Context, id string, status domain.ChapterStatus) error {
	return s.mutate(ctx, id, func(ch *domain.Chapter) {
		ch.Status = status
	})
}

func (s *chapterService) SetNotes(ctx context.Context, id, notes string) error {
	return s.mutate(ctx, id, func(ch *domain.Chapter) {
		ch.Notes = notes
	})
}

func (s *chapterService) mutate(ctx context.Context, id string, apply func(*domain.Chapter)) error {
	ch, err := s.chapters.GetByID(ctx, id)
	if err != nil {
		return err
	}
	apply(ch)
	if err := ch.Validate(); err != nil {
		return err
	}
	ch.UpdatedAt = time.Now().UTC()
	return s.chapters.Update(ctx, ch)
}

// LogMinutes adds study time to a chapter and marks an untouched chapter
// as in progress.
func (s *chapterService) LogMinutes(ctx context.Context, id string, minutes int) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"chapter_id": id, "minutes": minutes}
	defer observe(ctx, s.observer, "log-minutes", startedAt, fields, &err)

	if minutes <= 0 {
		err = &domain.ValidationError{Field: "minutes", Message: fmt.Sprintf("%d must be positive", minutes)}
		return err
	}
	err = s.chapters.AddMinutes(ctx, id, minutes)
	return err
}

func (s *chapterService) Remove(ctx context.Context, id string) error {
	return s.chapters.Delete(ctx, id)
}

func (s *chapterService) Progress(ctx context.Context, subjectID string) (domain.ChapterProgress, error) {
	chapters, err := s.List(ctx, subjectID)
	if err != nil {
		return domain.ChapterProgress{}, err
	}
	return domain.ProgressOf(chapters), nil
}
