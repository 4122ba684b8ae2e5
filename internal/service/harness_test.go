package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/alexanderramin/optistudy/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db        *sql.DB
	uow       db.UnitOfWork
	subjects  *repository.SQLiteSubjectRepo
	chapters  *repository.SQLiteChapterRepo
	resources *repository.SQLiteResourceRepo
	schedules *repository.SQLiteScheduleRepo
	settings  *repository.SQLiteSettingsRepo
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testRepos{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		subjects:  repository.NewSQLiteSubjectRepo(database),
		chapters:  repository.NewSQLiteChapterRepo(database),
		resources: repository.NewSQLiteResourceRepo(database),
		schedules: repository.NewSQLiteScheduleRepo(database),
		settings:  repository.NewSQLiteSettingsRepo(database),
	}
}

// loadDemo seeds the six demo subjects relative to testutil.Today.
func (r *testRepos) loadDemo(t *testing.T) {
	t.Helper()
	_, err := NewSubjectService(r.subjects, r.uow).LoadDemo(context.Background(), testutil.Today)
	require.NoError(t, err)
}

func (r *testRepos) planService() PlanService {
	return NewPlanService(r.subjects, r.schedules, r.settings, r.uow, nil)
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.events = append(o.events, event)
}
