package service

import (
	"context"

	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/samber/lo"
)

const (
	prepBarLimit   = 5
	examWindowDays = 30
)

type dashboardService struct {
	subjects  repository.SubjectRepo
	schedules repository.ScheduleRepo
	settings  repository.SettingsRepo
	dayStart  float64
}

// NewDashboardService builds the overview. dayStart is the hour today's
// timeline begins at.
func NewDashboardService(
	subjects repository.SubjectRepo,
	schedules repository.ScheduleRepo,
	settings repository.SettingsRepo,
	dayStart float64,
) DashboardService {
	return &dashboardService{subjects: subjects, schedules: schedules, settings: settings, dayStart: dayStart}
}

func (s *dashboardService) Dashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error) {
	now := nowOr(req.Now)

	rows, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	subjects := subjectValues(rows)
	st, err := settingsOrDefault(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	rec, err := latestScheduleOrNil(ctx, s.schedules)
	if err != nil {
		return nil, err
	}

	resp := &contract.DashboardResponse{
		GeneratedAt:   now,
		SubjectCount:  len(subjects),
		TotalHours:    st.TotalHours,
		Notifications: insight.Notifications(subjects, now),
	}

	// Passed exams drop out of the countdown.
	upcoming := lo.FilterMap(subjects, func(subj domain.Subject, _ int) (int, bool) {
		d := domain.CeilDaysUntil(subj.ExamDate, now)
		return d, d > 0
	})
	if len(upcoming) > 0 {
		next := lo.Min(upcoming)
		resp.NextExamDays = &next
	}
	resp.ExamsWithin30Days = lo.CountBy(upcoming, func(d int) bool { return d <= examWindowDays })

	if len(subjects) > 0 {
		total := lo.SumBy(subjects, func(subj domain.Subject) int { return subj.Preparedness })
		resp.AvgPreparednessPct = insight.PreparednessPct(float64(total) / float64(len(subjects)))
	}
	for i, subj := range subjects {
		if i == prepBarLimit {
			break
		}
		resp.PrepBars = append(resp.PrepBars, contract.PrepBar{
			SubjectName: subj.Name,
			Pct:         insight.PreparednessPct(float64(subj.Preparedness)),
		})
	}

	if rec != nil {
		resp.HasSchedule = true
		resp.WeeklyHours = st.TotalHours * float64(int(now.Weekday())+1)
		resp.Today = insight.TodayPlan(rec.Allocations, s.dayStart, now)
		resp.TodayDone = insight.DoneCount(resp.Today)
	}
	return resp, nil
}
