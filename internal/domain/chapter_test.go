package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChapter_Validate(t *testing.T) {
	c := &Chapter{Name: "Limits", Status: ChapterNotStarted}
	assert.NoError(t, c.Validate())

	c.Status = "paused"
	assert.Error(t, c.Validate())

	c.Status = ChapterCompleted
	c.Name = ""
	assert.Error(t, c.Validate())
}

func TestProgressOf(t *testing.T) {
	chapters := []*Chapter{
		{Status: ChapterCompleted},
		{Status: ChapterInProgress},
		{Status: ChapterCompleted},
		{Status: ChapterNotStarted},
	}

	p := ProgressOf(chapters)
	assert.Equal(t, 2, p.Done)
	assert.Equal(t, 4, p.Total)
	assert.InDelta(t, 50.0, p.Pct(), 1e-9)
	assert.Zero(t, ProgressOf(nil).Pct())
}

func TestResource_Validate(t *testing.T) {
	r := &Resource{Title: "Lecture 3", Type: ResourceVideo, URL: "https://example.com/v"}
	assert.NoError(t, r.Validate())

	r.FilePath = "/tmp/notes.pdf"
	assert.Error(t, r.Validate(), "only pdf resources may carry a file")

	r.Type = ResourcePDF
	assert.NoError(t, r.Validate())

	r.Title = " "
	assert.Error(t, r.Validate())
}

func TestSettings_Validate(t *testing.T) {
	s := DefaultSettings()
	assert.NoError(t, s.Validate())

	s.TotalHours = 0
	assert.Error(t, s.Validate())

	s.TotalHours = 6
	s.MaxPerSubject = -1
	assert.Error(t, s.Validate())
}
