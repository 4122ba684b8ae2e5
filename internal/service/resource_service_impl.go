package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/google/uuid"
)

type resourceService struct {
	chapters  repository.ChapterRepo
	resources repository.ResourceRepo
}

func NewResourceService(chapters repository.ChapterRepo, resources repository.ResourceRepo) ResourceService {
	return &resourceService{chapters: chapters, resources: resources}
}

func (s *resourceService) Add(ctx context.Context, r *domain.Resource) error {
	r.Title = strings.TrimSpace(r.Title)
	r.URL = strings.TrimSpace(r.URL)
	if r.Type == "" {
		r.Type = domain.ResourceLink
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if _, err := s.chapters.GetByID(ctx, r.ChapterID); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().UTC()
	return s.resources.Create(ctx, r)
}

func (s *resourceService) List(ctx context.Context, chapterID string) ([]*domain.Resource, error) {
	return s.resources.ListByChapter(ctx, chapterID)
}

func (s *resourceService) Remove(ctx context.Context, id string) error {
	return s.resources.Delete(ctx, id)
}
