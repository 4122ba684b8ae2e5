package service

import (
	"context"
	"time"

	"github.com/alexanderramin/optistudy/internal/advisor"
	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
)

type SubjectService interface {
	Add(ctx context.Context, s *domain.Subject) error
	Get(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Remove(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, subjects []*domain.Subject) error
	LoadDemo(ctx context.Context, today time.Time) ([]*domain.Subject, error)
}

type ChapterService interface {
	List(ctx context.Context, subjectID string) ([]*domain.Chapter, error)
	Get(ctx context.Context, id string) (*domain.Chapter, error)
	Add(ctx context.Context, subjectID, name string) (*domain.Chapter, error)
	Rename(ctx context.Context, id, name string) error
	SetStatus(ctx context.Context, id string, status domain.ChapterStatus) error
	SetNotes(ctx context.Context, id, notes string) error
	LogMinutes(ctx context.Context, id string, minutes int) error
	Remove(ctx context.Context, id string) error
	Progress(ctx context.Context, subjectID string) (domain.ChapterProgress, error)
}

type ResourceService interface {
	Add(ctx context.Context, r *domain.Resource) error
	List(ctx context.Context, chapterID string) ([]*domain.Resource, error)
	Remove(ctx context.Context, id string) error
}

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	Latest(ctx context.Context) (*contract.PlanResponse, error)
	History(ctx context.Context, limit int) ([]*domain.ScheduleRecord, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

type DashboardService interface {
	Dashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type AdvisorService interface {
	Ask(ctx context.Context, question string, now time.Time) (*advisor.Answer, error)
}

type CalendarService interface {
	Month(ctx context.Context, year int, month time.Month, now time.Time) (*insight.Month, error)
}
