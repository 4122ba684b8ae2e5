package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertSchedule(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO schedules (id, total_hours, allocations, created_at) VALUES (?, 6, '[]', '2025-03-15T00:00:00Z')`, id)
	return err
}

// scheduleExists reads through a fresh transaction so the check never
// races the connection held by the transaction under test.
func scheduleExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedules WHERE id = ?`, id).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSchedule(ctx, tx, "s1")
	})
	require.NoError(t, err)

	assert.True(t, scheduleExists(t, uow, "s1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSchedule(ctx, tx, "s2"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.False(t, scheduleExists(t, uow, "s2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSchedule(ctx, tx, "s3")
			panic("boom")
		})
	})

	assert.False(t, scheduleExists(t, uow, "s3"), "row should not exist after panic rollback")
}

func TestFailOnNthExecUoW_MatchCountsOnlyMatchingWrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("settings write failed")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Match: "INTO settings", Err: boom}

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		for _, id := range []string{"a", "b", "c"} {
			if err := insertSchedule(ctx, tx, id); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO settings (id, total_hours, max_per_subject, updated_at) VALUES ('default', 9, 0, '2025-03-15T00:00:00Z')`)
		return err
	})
	require.ErrorIs(t, err, boom)

	assert.False(t, scheduleExists(t, db.NewSQLiteUnitOfWork(database), "a"), "earlier writes roll back with the failed one")
}

func TestOpenDB_ReopenKeepsSavedPlans(t *testing.T) {
	database, path := testutil.NewFileTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSchedule(ctx, tx, "kept")
	}))
	require.NoError(t, database.Close())

	reopened, err := db.OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	assert.True(t, scheduleExists(t, db.NewSQLiteUnitOfWork(reopened), "kept"))
}
