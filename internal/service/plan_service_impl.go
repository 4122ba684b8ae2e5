package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/alexanderramin/optistudy/internal/scheduler"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type planService struct {
	subjects  repository.SubjectRepo
	schedules repository.ScheduleRepo
	settings  repository.SettingsRepo
	uow       db.UnitOfWork
	allocator *scheduler.Allocator
	observer  UseCaseObserver
}

func NewPlanService(
	subjects repository.SubjectRepo,
	schedules repository.ScheduleRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	allocator *scheduler.Allocator,
	observers ...UseCaseObserver,
) PlanService {
	if allocator == nil {
		allocator = scheduler.NewAllocator()
	}
	return &planService{
		subjects:  subjects,
		schedules: schedules,
		settings:  settings,
		uow:       uow,
		allocator: allocator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Generate allocates today's hours across all subjects. Unless DryRun is
// set, the plan and any overridden settings are saved in one transaction.
func (s *planService) Generate(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dry_run": req.DryRun}
	defer observe(ctx, s.observer, "generate-plan", startedAt, fields, &err)

	now := nowOr(req.Now)

	stored, err := settingsOrDefault(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	effective := *stored
	effective.TotalHours = domain.Float64FromPtrWithDefault(stored.TotalHours, req.TotalHours)
	effective.MaxPerSubject = domain.Float64FromPtrWithDefault(stored.MaxPerSubject, req.MaxPerSubject)

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	values := subjectValues(subjects)
	fields["subject_count"] = len(values)
	fields["total_hours"] = effective.TotalHours

	plan, err := s.allocator.Allocate(values, effective.TotalHours, effective.MaxPerSubject, now)
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	if err = effective.Validate(); err != nil {
		return nil, err
	}
	fields["passes"] = plan.Passes

	rec := &domain.ScheduleRecord{
		ID:          uuid.New().String(),
		TotalHours:  plan.TotalHours,
		MinHours:    plan.MinHours,
		MaxHours:    plan.MaxHours,
		Passes:      plan.Passes,
		Infeasible:  plan.Infeasible,
		Warnings:    planWarnings(plan, values, s.allocator.Config, now),
		Allocations: toScheduled(plan.Allocations),
		CreatedAt:   time.Now().UTC(),
	}

	if !req.DryRun {
		settingsChanged := effective.TotalHours != stored.TotalHours || effective.MaxPerSubject != stored.MaxPerSubject
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if err := repository.NewSQLiteScheduleRepo(tx).Save(ctx, rec); err != nil {
				return err
			}
			if settingsChanged {
				return repository.NewSQLiteSettingsRepo(tx).Upsert(ctx, &effective)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("saving plan: %w", err)
		}
	}

	resp = s.response(rec, now)
	if req.DryRun {
		resp.ScheduleID = ""
	}
	return resp, nil
}

// Latest rebuilds the response for the most recently saved plan, including
// the bounds and warnings it was generated with.
func (s *planService) Latest(ctx context.Context) (*contract.PlanResponse, error) {
	rec, err := s.schedules.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return s.response(rec, rec.CreatedAt), nil
}

func (s *planService) History(ctx context.Context, limit int) ([]*domain.ScheduleRecord, error) {
	return s.schedules.List(ctx, limit)
}

func (s *planService) response(rec *domain.ScheduleRecord, generatedAt time.Time) *contract.PlanResponse {
	cfg := s.allocator.Config
	return &contract.PlanResponse{
		ScheduleID:     rec.ID,
		GeneratedAt:    generatedAt,
		TotalHours:     rec.TotalHours,
		MinHours:       rec.MinHours,
		MaxHours:       rec.MaxHours,
		Passes:         rec.Passes,
		Infeasible:     rec.Infeasible,
		Warnings:       rec.Warnings,
		AllocatedHours: lo.SumBy(rec.Allocations, func(a domain.ScheduledSubject) float64 { return a.Hours }),
		Allocations:    rec.Allocations,
		Explanation:    insight.Explain(rec.Allocations, cfg.MaxShareOfTotal, cfg.MinHours),
	}
}

// planWarnings flags the cases where the allocation could not honour its
// own bounds, plus subjects whose exam is already behind them.
func planWarnings(plan *scheduler.Plan, subjects []domain.Subject, cfg scheduler.AllocatorConfig, now time.Time) []string {
	var warnings []string
	if plan.Infeasible {
		warnings = append(warnings, fmt.Sprintf(
			"%.1fh cannot give each of %d subjects the %d-minute minimum; hours are best effort",
			plan.TotalHours, len(plan.Allocations), int(math.Round(cfg.MinHours*60))))
	}
	if plan.OverflowSubjectID != "" {
		if a, ok := lo.Find(plan.Allocations, func(a scheduler.Allocation) bool { return a.Subject.ID == plan.OverflowSubjectID }); ok {
			warnings = append(warnings, fmt.Sprintf(
				"%s gets %.1fh, above the %.1fh per-subject cap, because no other subject could take the remainder",
				a.Subject.Name, a.Hours, plan.MaxHours))
		}
	}
	for _, subj := range subjects {
		if subj.DaysUntilExam(now) < 0 {
			warnings = append(warnings, fmt.Sprintf("%s exam date has passed; it is still scheduled at full urgency", subj.Name))
		}
	}
	return warnings
}
