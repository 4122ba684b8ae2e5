package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/optistudy/internal/db"
)

// FailOnNthExecUoW runs callbacks through the real SQLite unit of work but
// fails the Nth counted ExecContext with Err, counting from 1. When Match is
// set only statements containing it are counted, so a test can target
// "INTO settings" without knowing how many rows were written before it.
// Reads always pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Match  string
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, uow: u})
	})
}

type failOnNthExec struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	count atomic.Int32
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.Match == "" || strings.Contains(query, f.uow.Match) {
		if f.count.Add(1) == f.uow.FailOn {
			return nil, f.uow.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
