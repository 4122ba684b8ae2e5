package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single 'default' row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT total_hours, max_per_subject, start_date, updated_at FROM settings WHERE id = 'default'`)

	var s domain.Settings
	var start sql.NullString
	var updatedStr string
	if err := row.Scan(&s.TotalHours, &s.MaxPerSubject, &start, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.StartDate = parseNullableTime(start, dateLayout)
	updated, err := time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	s.UpdatedAt = updated
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (id, total_hours, max_per_subject, start_date, updated_at)
		VALUES ('default', ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.TotalHours,
		s.MaxPerSubject,
		nullableTimeToString(s.StartDate, dateLayout),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
