package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/alexanderramin/optistudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChapter(t *testing.T, r *testRepos) *domain.Chapter {
	t.Helper()
	ctx := context.Background()
	subj := testutil.NewTestSubject("Physics")
	require.NoError(t, r.subjects.Create(ctx, subj))
	ch := testutil.NewTestChapter(subj.ID, 1)
	require.NoError(t, r.chapters.Create(ctx, ch))
	return ch
}

func TestResourceService_AddDefaultsToLink(t *testing.T) {
	r := newTestRepos(t)
	svc := NewResourceService(r.chapters, r.resources)
	ctx := context.Background()
	ch := seedChapter(t, r)

	res := &domain.Resource{ChapterID: ch.ID, Title: "  Lecture slides ", URL: " https://example.com/slides "}
	require.NoError(t, svc.Add(ctx, res))
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, domain.ResourceLink, res.Type)

	got, err := svc.List(ctx, ch.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lecture slides", got[0].Title)
	assert.Equal(t, "https://example.com/slides", got[0].URL)
}

func TestResourceService_PDFWithFile(t *testing.T) {
	r := newTestRepos(t)
	svc := NewResourceService(r.chapters, r.resources)
	ctx := context.Background()
	ch := seedChapter(t, r)

	require.NoError(t, svc.Add(ctx, &domain.Resource{
		ChapterID: ch.ID, Title: "Past paper", Type: domain.ResourcePDF, FilePath: "/tmp/paper.pdf",
	}))

	var ve *domain.ValidationError
	err := svc.Add(ctx, &domain.Resource{
		ChapterID: ch.ID, Title: "Clip", Type: domain.ResourceVideo, FilePath: "/tmp/clip.mp4",
	})
	require.ErrorAs(t, err, &ve)
}

func TestResourceService_Validation(t *testing.T) {
	r := newTestRepos(t)
	svc := NewResourceService(r.chapters, r.resources)
	ctx := context.Background()
	ch := seedChapter(t, r)

	var ve *domain.ValidationError
	assert.ErrorAs(t, svc.Add(ctx, &domain.Resource{ChapterID: ch.ID, Title: " "}), &ve)
	assert.ErrorAs(t, svc.Add(ctx, &domain.Resource{ChapterID: ch.ID, Title: "x", Type: "podcast"}), &ve)

	err := svc.Add(ctx, &domain.Resource{ChapterID: "missing", Title: "Orphan"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResourceService_Remove(t *testing.T) {
	r := newTestRepos(t)
	svc := NewResourceService(r.chapters, r.resources)
	ctx := context.Background()
	ch := seedChapter(t, r)

	res := &domain.Resource{ChapterID: ch.ID, Title: "Notes", Type: domain.ResourceNote}
	require.NoError(t, svc.Add(ctx, res))
	require.NoError(t, svc.Remove(ctx, res.ID))

	got, err := svc.List(ctx, ch.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, svc.Remove(ctx, res.ID), repository.ErrNotFound)
}
