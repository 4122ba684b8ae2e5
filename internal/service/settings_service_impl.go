package service

import (
	"context"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return settingsOrDefault(ctx, s.settings)
}

func (s *settingsService) Update(ctx context.Context, st *domain.Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	return s.settings.Upsert(ctx, st)
}
