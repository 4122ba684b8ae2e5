package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/advisor"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
)

type advisorService struct {
	subjects  repository.SubjectRepo
	schedules repository.ScheduleRepo
	settings  repository.SettingsRepo
	observer  UseCaseObserver
}

func NewAdvisorService(
	subjects repository.SubjectRepo,
	schedules repository.ScheduleRepo,
	settings repository.SettingsRepo,
	observers ...UseCaseObserver,
) AdvisorService {
	return &advisorService{
		subjects:  subjects,
		schedules: schedules,
		settings:  settings,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Ask answers a question against the current subjects and latest plan.
func (s *advisorService) Ask(ctx context.Context, question string, now time.Time) (answer *advisor.Answer, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "ask", startedAt, fields, &err)

	if strings.TrimSpace(question) == "" {
		err = &domain.ValidationError{Field: "question", Message: "must not be blank"}
		return nil, err
	}

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

	snap := advisor.Snapshot{
		Subjects:   subjectValues(rows),
		TotalHours: st.TotalHours,
		Now:        now,
	}
	if rec != nil {
		snap.Schedule = rec.Allocations
	}
	answer = advisor.Respond(question, snap)
	fields["topic"] = string(answer.Topic)
	return answer, nil
}
