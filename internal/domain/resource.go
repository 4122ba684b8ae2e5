package domain

import (
	"strings"
	"time"
)

// Resource is study material attached to a chapter.
type Resource struct {
	ID        string
	ChapterID string
	Title     string
	URL       string
	Type      ResourceType
	FilePath  string
	CreatedAt time.Time
}

func (r *Resource) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid("resource title", "is required")
	}
	if !ValidResourceTypes[r.Type] {
		return invalid("resource type", "%q is not one of link, video, pdf, note", r.Type)
	}
	if r.FilePath != "" && r.Type != ResourcePDF {
		return invalid("resource file", "only pdf resources may reference a file")
	}
	return nil
}
