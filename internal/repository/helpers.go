package repository

import (
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// parseTimestamps fills created/updated from their RFC3339 columns.
func parseTimestamps(createdStr, updatedStr string, created, updated *time.Time) error {
	var err error
	if *created, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if updated == nil {
		return nil
	}
	if *updated, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

// requireAffected turns a zero-row UPDATE/DELETE into ErrNotFound.
func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
