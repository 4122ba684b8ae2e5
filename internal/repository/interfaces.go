package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/optistudy/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
	// ReplaceAll drops every subject (cascading to chapters) and inserts subjects.
	ReplaceAll(ctx context.Context, subjects []*domain.Subject) error
}

type ChapterRepo interface {
	Create(ctx context.Context, c *domain.Chapter) error
	GetByID(ctx context.Context, id string) (*domain.Chapter, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.Chapter, error)
	Update(ctx context.Context, c *domain.Chapter) error
	Delete(ctx context.Context, id string) error
	AddMinutes(ctx context.Context, id string, minutes int) error
	ReplaceForSubject(ctx context.Context, subjectID string, chapters []*domain.Chapter) error
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	ListByChapter(ctx context.Context, chapterID string) ([]*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Save(ctx context.Context, rec *domain.ScheduleRecord) error
	Latest(ctx context.Context) (*domain.ScheduleRecord, error)
	List(ctx context.Context, limit int) ([]*domain.ScheduleRecord, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
