package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSubject(t *testing.T, repo *SQLiteSubjectRepo) *domain.Subject {
	t.Helper()
	s := testutil.NewTestSubject("Chemistry")
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestChapterRepo_ListBySubjectOrdersByNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	subj := seedSubject(t, NewSQLiteSubjectRepo(db))
	repo := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	for _, n := range []int{3, 1, 2} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestChapter(subj.ID, n)))
	}

	list, err := repo.ListBySubject(ctx, subj.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, c := range list {
		assert.Equal(t, i+1, c.Number)
		assert.Equal(t, domain.DefaultChapterName(i+1), c.Name)
		assert.Equal(t, domain.ChapterNotStarted, c.Status)
	}
}

func TestChapterRepo_AddMinutesStartsChapter(t *testing.T) {
	db := testutil.NewTestDB(t)
	subj := seedSubject(t, NewSQLiteSubjectRepo(db))
	repo := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	ch := testutil.NewTestChapter(subj.ID, 1)
	require.NoError(t, repo.Create(ctx, ch))

	require.NoError(t, repo.AddMinutes(ctx, ch.ID, 25))
	require.NoError(t, repo.AddMinutes(ctx, ch.ID, 10))

	fetched, err := repo.GetByID(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, fetched.TimeSpentMin)
	assert.Equal(t, domain.ChapterInProgress, fetched.Status)
}

func TestChapterRepo_AddMinutesKeepsCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	subj := seedSubject(t, NewSQLiteSubjectRepo(db))
	repo := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	ch := testutil.NewTestChapter(subj.ID, 1, testutil.WithChapterStatus(domain.ChapterCompleted))
	require.NoError(t, repo.Create(ctx, ch))
	require.NoError(t, repo.AddMinutes(ctx, ch.ID, 5))

	fetched, err := repo.GetByID(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ChapterCompleted, fetched.Status)
}

func TestChapterRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	subj := seedSubject(t, NewSQLiteSubjectRepo(db))
	repo := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	ch := testutil.NewTestChapter(subj.ID, 1)
	require.NoError(t, repo.Create(ctx, ch))

	ch.Name = "Kinetics"
	ch.Notes = "review rate laws"
	ch.Status = domain.ChapterCompleted
	require.NoError(t, repo.Update(ctx, ch))

	fetched, err := repo.GetByID(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kinetics", fetched.Name)
	assert.Equal(t, "review rate laws", fetched.Notes)
	assert.Equal(t, domain.ChapterCompleted, fetched.Status)

	require.NoError(t, repo.Delete(ctx, ch.ID))
	_, err = repo.GetByID(ctx, ch.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChapterRepo_ReplaceForSubject(t *testing.T) {
	db := testutil.NewTestDB(t)
	subj := seedSubject(t, NewSQLiteSubjectRepo(db))
	repo := NewSQLiteChapterRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestChapter(subj.ID, 1)))

	next := []*domain.Chapter{
		testutil.NewTestChapter("", 1),
		testutil.NewTestChapter("", 2),
	}
	require.NoError(t, repo.ReplaceForSubject(ctx, subj.ID, next))

	list, err := repo.ListBySubject(ctx, subj.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, next[0].ID, list[0].ID)
}

func TestChapterRepo_RejectsUnknownSubject(t *testing.T) {
	repo := NewSQLiteChapterRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), testutil.NewTestChapter("no-such-subject", 1))
	assert.Error(t, err)
}
