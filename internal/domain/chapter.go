package domain

import (
	"fmt"
	"strings"
	"time"
)

type Chapter struct {
	ID           string
	SubjectID    string
	Name         string
	Number       int
	Notes        string
	Status       ChapterStatus
	TimeSpentMin int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultChapterName is the label given to auto-generated chapters.
func DefaultChapterName(number int) string {
	return fmt.Sprintf("Chapter %d", number)
}

func (c *Chapter) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("chapter name", "must not be blank")
	}
	if !ValidChapterStatuses[c.Status] {
		return invalid("chapter status", "%q is not one of not_started, in_progress, completed", c.Status)
	}
	if c.TimeSpentMin < 0 {
		return invalid("time spent", "%d must not be negative", c.TimeSpentMin)
	}
	return nil
}

// ChapterProgress summarises completion across a subject's chapters.
type ChapterProgress struct {
	Done  int
	Total int
}

func (p ChapterProgress) Pct() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// ProgressOf counts completed chapters.
func ProgressOf(chapters []*Chapter) ChapterProgress {
	p := ChapterProgress{Total: len(chapters)}
	for _, c := range chapters {
		if c.Status == ChapterCompleted {
			p.Done++
		}
	}
	return p
}
