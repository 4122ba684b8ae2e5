package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Calculus",
		testutil.WithExamIn(3), testutil.WithDifficulty(5), testutil.WithPreparedness(2), testutil.WithChapters(8))
	require.NoError(t, repo.Create(ctx, subj))

	fetched, err := repo.GetByID(ctx, subj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calculus", fetched.Name)
	assert.Equal(t, subj.ExamDate.Format("2006-01-02"), fetched.ExamDate.Format("2006-01-02"))
	assert.Equal(t, 5, fetched.Difficulty)
	assert.Equal(t, 2, fetched.Preparedness)
	assert.Equal(t, 8, fetched.Chapters)
	assert.True(t, subj.CreatedAt.Equal(fetched.CreatedAt))
}

func TestSubjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSubjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectRepo_ListOrdersByPosition(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubject("Second", testutil.WithPosition(1))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubject("First", testutil.WithPosition(0))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubject("Third", testutil.WithPosition(2))))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "Second", list[1].Name)
	assert.Equal(t, "Third", list[2].Name)
}

func TestSubjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Physics")
	require.NoError(t, repo.Create(ctx, subj))

	subj.Preparedness = 5
	subj.Name = "Physics II"
	require.NoError(t, repo.Update(ctx, subj))

	fetched, err := repo.GetByID(ctx, subj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics II", fetched.Name)
	assert.Equal(t, 5, fetched.Preparedness)
}

func TestSubjectRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteSubjectRepo(testutil.NewTestDB(t))

	err := repo.Update(context.Background(), testutil.NewTestSubject("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectRepo_DeleteCascadesChapters(t *testing.T) {
	db := testutil.NewTestDB(t)
	subjects := NewSQLiteSubjectRepo(db)
	chapters := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	subj := testutil.NewTestSubject("History")
	require.NoError(t, subjects.Create(ctx, subj))
	require.NoError(t, chapters.Create(ctx, testutil.NewTestChapter(subj.ID, 1)))

	require.NoError(t, subjects.Delete(ctx, subj.ID))

	list, err := chapters.ListBySubject(ctx, subj.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, subjects.Delete(ctx, subj.ID), ErrNotFound)
}

func TestSubjectRepo_ReplaceAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubject("Old")))

	replacement := []*domain.Subject{
		testutil.NewTestSubject("A", testutil.WithPosition(0)),
		testutil.NewTestSubject("B", testutil.WithPosition(1)),
	}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
}
