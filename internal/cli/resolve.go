package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/optistudy/internal/domain"
)

// resolveSubject accepts a full ID, a case-insensitive name, or a unique ID
// prefix, in that order.
func resolveSubject(ctx context.Context, app *App, input string) (*domain.Subject, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, s := range subjects {
		if s.ID == input {
			return s, nil
		}
	}
	for _, s := range subjects {
		if strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}

	var matches []*domain.Subject
	for _, s := range subjects {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("subject not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("subject ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveChapter finds a subject's chapter by its number.
func resolveChapter(ctx context.Context, app *App, subjectRef, number string) (*domain.Subject, *domain.Chapter, error) {
	subj, err := resolveSubject(ctx, app, subjectRef)
	if err != nil {
		return nil, nil, err
	}
	n, err := strconv.Atoi(number)
	if err != nil || n <= 0 {
		return nil, nil, fmt.Errorf("chapter number must be a positive integer, got %q", number)
	}
	chapters, err := app.Chapters.List(ctx, subj.ID)
	if err != nil {
		return nil, nil, err
	}
	for _, ch := range chapters {
		if ch.Number == n {
			return subj, ch, nil
		}
	}
	return nil, nil, fmt.Errorf("%s has no chapter %d", subj.Name, n)
}

// resolveResource matches a resource ID prefix within one chapter.
func resolveResource(ctx context.Context, app *App, chapterID, prefix string) (*domain.Resource, error) {
	resources, err := app.Resources.List(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Resource
	for _, r := range resources {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("resource not found: %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("resource ID prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}
