package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/domain"
)

type SQLiteResourceRepo struct {
	db db.DBTX
}

func NewSQLiteResourceRepo(conn db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: conn}
}

func (r *SQLiteResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, chapter_id, title, url, type, file_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.ChapterID,
		res.Title,
		res.URL,
		string(res.Type),
		res.FilePath,
		res.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

// ListByChapter returns resources newest first.
func (r *SQLiteResourceRepo) ListByChapter(ctx context.Context, chapterID string) ([]*domain.Resource, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, chapter_id, title, url, type, file_path, created_at
		 FROM resources WHERE chapter_id = ? ORDER BY created_at DESC, rowid DESC`, chapterID)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var out []*domain.Resource
	for rows.Next() {
		var res domain.Resource
		var typeStr, createdStr string
		if err := rows.Scan(&res.ID, &res.ChapterID, &res.Title, &res.URL, &typeStr, &res.FilePath, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		res.Type = domain.ResourceType(typeStr)
		if err := parseTimestamps(createdStr, "", &res.CreatedAt, nil); err != nil {
			return nil, err
		}
		out = append(out, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return out, nil
}

func (r *SQLiteResourceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	return requireAffected(res, "resource "+id)
}
