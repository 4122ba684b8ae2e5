package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 1, count, "settings row must be seeded exactly once")
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"subjects", "chapters", "resources", "schedules", "settings"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_SeedsDefaultSettings(t *testing.T) {
	db := openTestDB(t)

	var total, maxPer float64
	var start sql.NullString
	err := db.QueryRow(`SELECT total_hours, max_per_subject, start_date FROM settings WHERE id = 'default'`).
		Scan(&total, &maxPer, &start)
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)
	assert.Equal(t, 0.0, maxPer)
	assert.False(t, start.Valid)
}

func TestMigrate_ChapterCascadeOnSubjectDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO subjects (id, name, exam_date, created_at, updated_at)
		VALUES ('s1', 'Math', '2025-04-01', 'now', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO chapters (id, subject_id, name, number, created_at, updated_at)
		VALUES ('c1', 's1', 'Chapter 1', 1, 'now', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO resources (id, chapter_id, title, created_at)
		VALUES ('r1', 'c1', 'Notes', 'now')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM subjects WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM chapters`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM resources`).Scan(&n))
	assert.Zero(t, n)
}

func TestMigrate_RejectsOutOfRangeRatings(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO subjects (id, name, exam_date, difficulty, created_at, updated_at)
		VALUES ('s1', 'Math', '2025-04-01', 9, 'now', 'now')`)
	assert.Error(t, err)
}

func TestMigrate_AddsPlanColumnsToExistingSchedules(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE schedules (
		id          TEXT PRIMARY KEY,
		total_hours REAL NOT NULL,
		allocations TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO schedules (id, total_hours, allocations, created_at) VALUES ('old', 6, '[]', 'now')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var maxHours float64
	var passes, infeasible int
	var warnings string
	err = db.QueryRow(`SELECT max_hours, passes, infeasible, warnings FROM schedules WHERE id = 'old'`).
		Scan(&maxHours, &passes, &infeasible, &warnings)
	require.NoError(t, err)
	assert.Equal(t, 0.0, maxHours)
	assert.Equal(t, 0, passes)
	assert.Equal(t, 0, infeasible)
	assert.Equal(t, "[]", warnings)
}
