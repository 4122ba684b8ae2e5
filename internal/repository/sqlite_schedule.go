package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/domain"
)

// SQLiteScheduleRepo stores generated plans. Allocations are kept as a JSON
// array so a snapshot survives later edits to the subjects it was built from.
const scheduleColumns = `id, total_hours, min_hours, max_hours, passes, infeasible, warnings, allocations, created_at`

type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, rec *domain.ScheduleRecord) error {
	payload, err := json.Marshal(rec.Allocations)
	if err != nil {
		return fmt.Errorf("encoding allocations: %w", err)
	}
	warnings := rec.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO schedules (id, total_hours, min_hours, max_hours, passes, infeasible, warnings, allocations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.TotalHours,
		rec.MinHours,
		rec.MaxHours,
		rec.Passes,
		boolToInt(rec.Infeasible),
		string(warningsJSON),
		string(payload),
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Latest(ctx context.Context) (*domain.ScheduleRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at DESC, rowid DESC LIMIT 1`)
	rec, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule: %w", ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

// List returns up to limit schedules, newest first. A limit <= 0 returns all.
func (r *SQLiteScheduleRepo) List(ctx context.Context, limit int) ([]*domain.ScheduleRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var out []*domain.ScheduleRecord
	for rows.Next() {
		rec, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return out, nil
}

func scanSchedule(row rowScanner) (*domain.ScheduleRecord, error) {
	var rec domain.ScheduleRecord
	var payload, warnings, createdStr string
	var infeasible int
	if err := row.Scan(&rec.ID, &rec.TotalHours, &rec.MinHours, &rec.MaxHours, &rec.Passes, &infeasible,
		&warnings, &payload, &createdStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &rec.Allocations); err != nil {
		return nil, fmt.Errorf("decoding allocations: %w", err)
	}
	if err := json.Unmarshal([]byte(warnings), &rec.Warnings); err != nil {
		return nil, fmt.Errorf("decoding warnings: %w", err)
	}
	rec.Infeasible = infeasible != 0
	created, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = created
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
