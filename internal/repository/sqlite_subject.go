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

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

const subjectColumns = `id, name, exam_date, difficulty, preparedness, chapters, position, created_at, updated_at`

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) error {
	query := `INSERT INTO subjects (` + subjectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.ExamDate.Format(dateLayout),
		s.Difficulty,
		s.Preparedness,
		s.Chapters,
		s.Position,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+subjectColumns+` FROM subjects WHERE id = ?`, id)
	s, err := scanSubject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subject %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

// List returns subjects in entry order.
func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+subjectColumns+` FROM subjects ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

func (r *SQLiteSubjectRepo) Update(ctx context.Context, s *domain.Subject) error {
	query := `UPDATE subjects SET name = ?, exam_date = ?, difficulty = ?, preparedness = ?, chapters = ?, position = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.ExamDate.Format(dateLayout),
		s.Difficulty,
		s.Preparedness,
		s.Chapters,
		s.Position,
		s.UpdatedAt.UTC().Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating subject: %w", err)
	}
	return requireAffected(res, "subject "+s.ID)
}

func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return requireAffected(res, "subject "+id)
}

// ReplaceAll is not atomic on its own; run it inside a UnitOfWork.
func (r *SQLiteSubjectRepo) ReplaceAll(ctx context.Context, subjects []*domain.Subject) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects`); err != nil {
		return fmt.Errorf("clearing subjects: %w", err)
	}
	for _, s := range subjects {
		if err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func scanSubject(row rowScanner) (*domain.Subject, error) {
	var s domain.Subject
	var examStr, createdStr, updatedStr string
	err := row.Scan(
		&s.ID, &s.Name, &examStr,
		&s.Difficulty, &s.Preparedness, &s.Chapters, &s.Position,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	if s.ExamDate, err = time.Parse(dateLayout, examStr); err != nil {
		return nil, fmt.Errorf("parsing exam_date: %w", err)
	}
	if err := parseTimestamps(createdStr, updatedStr, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
