package testutil

import (
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/google/uuid"
)

// Reference date shared by service and insight tests.
var Today = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

// Subject options
type SubjectOption func(*domain.Subject)

// WithExamIn sets the exam date n calendar days after Today.
func WithExamIn(days int) SubjectOption {
	return func(s *domain.Subject) {
		y, m, d := Today.Date()
		s.ExamDate = time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC)
	}
}

func WithDifficulty(d int) SubjectOption {
	return func(s *domain.Subject) {
		s.Difficulty = d
	}
}

func WithPreparedness(p int) SubjectOption {
	return func(s *domain.Subject) {
		s.Preparedness = p
	}
}

func WithChapters(n int) SubjectOption {
	return func(s *domain.Subject) {
		s.Chapters = n
	}
}

func WithSubjectID(id string) SubjectOption {
	return func(s *domain.Subject) {
		s.ID = id
	}
}

func WithPosition(p int) SubjectOption {
	return func(s *domain.Subject) {
		s.Position = p
	}
}

func NewTestSubject(name string, opts ...SubjectOption) *domain.Subject {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Subject{
		ID:           uuid.New().String(),
		Name:         name,
		Difficulty:   domain.DefaultDifficulty,
		Preparedness: domain.DefaultPreparedness,
		Chapters:     domain.DefaultChapters,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	WithExamIn(7)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chapter options
type ChapterOption func(*domain.Chapter)

func WithChapterStatus(st domain.ChapterStatus) ChapterOption {
	return func(c *domain.Chapter) {
		c.Status = st
	}
}

func WithTimeSpent(min int) ChapterOption {
	return func(c *domain.Chapter) {
		c.TimeSpentMin = min
	}
}

func NewTestChapter(subjectID string, number int, opts ...ChapterOption) *domain.Chapter {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Chapter{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Name:      domain.DefaultChapterName(number),
		Number:    number,
		Status:    domain.ChapterNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestResource(chapterID, title string, typ domain.ResourceType) *domain.Resource {
	return &domain.Resource{
		ID:        uuid.New().String(),
		ChapterID: chapterID,
		Title:     title,
		URL:       "https://example.com/" + title,
		Type:      typ,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
