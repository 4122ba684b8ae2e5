package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Migrate runs all schema migrations and seeds the settings row.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedSettings(db); err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}
	return nil
}

// seedSettings inserts the default settings row on a fresh database.
func seedSettings(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT OR IGNORE INTO settings (id, total_hours, max_per_subject, start_date, updated_at)
		 VALUES ('default', 6, 0, NULL, ?)`,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		exam_date    TEXT NOT NULL,
		difficulty   INTEGER NOT NULL DEFAULT 3 CHECK(difficulty BETWEEN 1 AND 5),
		preparedness INTEGER NOT NULL DEFAULT 3 CHECK(preparedness BETWEEN 1 AND 5),
		chapters     INTEGER NOT NULL DEFAULT 5 CHECK(chapters >= 0),
		position     INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_subjects_position ON subjects(position)`,

	`CREATE TABLE IF NOT EXISTS chapters (
		id             TEXT PRIMARY KEY,
		subject_id     TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		number         INTEGER NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT 'not_started'
		               CHECK(status IN ('not_started','in_progress','completed')),
		time_spent_min INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chapters_subject ON chapters(subject_id)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id         TEXT PRIMARY KEY,
		chapter_id TEXT NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		url        TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL DEFAULT 'link'
		           CHECK(type IN ('link','video','pdf','note')),
		file_path  TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_chapter ON resources(chapter_id)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id          TEXT PRIMARY KEY,
		total_hours REAL NOT NULL,
		allocations TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedules_created ON schedules(created_at)`,

	`ALTER TABLE schedules ADD COLUMN min_hours REAL NOT NULL DEFAULT 0`,
	`ALTER TABLE schedules ADD COLUMN max_hours REAL NOT NULL DEFAULT 0`,
	`ALTER TABLE schedules ADD COLUMN passes INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE schedules ADD COLUMN infeasible INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE schedules ADD COLUMN warnings TEXT NOT NULL DEFAULT '[]'`,

	`CREATE TABLE IF NOT EXISTS settings (
		id              TEXT PRIMARY KEY CHECK(id = 'default'),
		total_hours     REAL NOT NULL DEFAULT 6,
		max_per_subject REAL NOT NULL DEFAULT 0,
		start_date      TEXT,
		updated_at      TEXT NOT NULL
	)`,
}
