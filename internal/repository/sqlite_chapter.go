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

// SQLiteChapterRepo implements ChapterRepo using a SQLite database.
type SQLiteChapterRepo struct {
	db db.DBTX
}

func NewSQLiteChapterRepo(conn db.DBTX) *SQLiteChapterRepo {
	return &SQLiteChapterRepo{db: conn}
}

const chapterColumns = `id, subject_id, name, number, notes, status, time_spent_min, created_at, updated_at`

func (r *SQLiteChapterRepo) Create(ctx context.Context, c *domain.Chapter) error {
	query := `INSERT INTO chapters (` + chapterColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.SubjectID,
		c.Name,
		c.Number,
		c.Notes,
		string(c.Status),
		c.TimeSpentMin,
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting chapter: %w", err)
	}
	return nil
}

func (r *SQLiteChapterRepo) GetByID(ctx context.Context, id string) (*domain.Chapter, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+chapterColumns+` FROM chapters WHERE id = ?`, id)
	c, err := scanChapter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("chapter %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteChapterRepo) ListBySubject(ctx context.Context, subjectID string) ([]*domain.Chapter, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+chapterColumns+` FROM chapters WHERE subject_id = ? ORDER BY number, created_at`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing chapters: %w", err)
	}
	defer rows.Close()

	var chapters []*domain.Chapter
	for rows.Next() {
		c, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chapters: %w", err)
	}
	return chapters, nil
}

func (r *SQLiteChapterRepo) Update(ctx context.Context, c *domain.Chapter) error {
	query := `UPDATE chapters SET name = ?, number = ?, notes = ?, status = ?, time_spent_min = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Number,
		c.Notes,
		string(c.Status),
		c.TimeSpentMin,
		c.UpdatedAt.UTC().Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating chapter: %w", err)
	}
	return requireAffected(res, "chapter "+c.ID)
}

func (r *SQLiteChapterRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting chapter: %w", err)
	}
	return requireAffected(res, "chapter "+id)
}

// AddMinutes increments the study time in place and moves an untouched
// chapter into in_progress.
func (r *SQLiteChapterRepo) AddMinutes(ctx context.Context, id string, minutes int) error {
	query := `UPDATE chapters SET
		time_spent_min = time_spent_min + ?,
		status = CASE WHEN status = 'not_started' THEN 'in_progress' ELSE status END,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, minutes, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("logging chapter minutes: %w", err)
	}
	return requireAffected(res, "chapter "+id)
}

// ReplaceForSubject is not atomic on its own; run it inside a UnitOfWork.
func (r *SQLiteChapterRepo) ReplaceForSubject(ctx context.Context, subjectID string, chapters []*domain.Chapter) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("clearing chapters: %w", err)
	}
	for _, c := range chapters {
		c.SubjectID = subjectID
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func scanChapter(row rowScanner) (*domain.Chapter, error) {
	var c domain.Chapter
	var statusStr, createdStr, updatedStr string
	err := row.Scan(
		&c.ID, &c.SubjectID, &c.Name, &c.Number, &c.Notes,
		&statusStr, &c.TimeSpentMin,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning chapter: %w", err)
	}
	c.Status = domain.ChapterStatus(statusStr)
	if err := parseTimestamps(createdStr, updatedStr, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
