package usecase

import (
	"context"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// knownToggles guards against typoed setting keys.
var knownToggles = map[string]bool{
	model.SettingRegistrationOpen: true,
	model.SettingTeamsEnabled:     true,
	model.SettingLeaderboardOpen:  true,
	model.SettingLoginEnabled:     true,
}

// SettingsService exposes the feature toggles.
type SettingsService struct {
	settings repository.SettingsRepository
	logger   *zap.Logger
}

// NewSettingsService creates a settings service.
func NewSettingsService(settings repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

// Get reads one toggle. Unknown keys are rejected; unset known keys read as
// disabled.
func (s *SettingsService) Get(ctx context.Context, key string) (bool, error) {
	if !knownToggles[key] {
		return false, domainerrors.ErrMissingFields
	}
	return s.settings.Get(ctx, key)
}

// Set flips one toggle.
func (s *SettingsService) Set(ctx context.Context, key string, enabled bool) error {
	if !knownToggles[key] {
		return domainerrors.ErrMissingFields
	}
	if err := s.settings.Set(ctx, key, enabled); err != nil {
		return err
	}
	s.logger.Info("setting changed", zap.String("key", key), zap.Bool("enabled", enabled))
	return nil
}

// All returns every known toggle, defaulting unset keys to false.
func (s *SettingsService) All(ctx context.Context) (map[string]bool, error) {
	stored, err := s.settings.All(ctx)
	if err != nil {
		return nil, err
	}

	all := make(map[string]bool, len(knownToggles))
	for key := range knownToggles {
		all[key] = stored[key]
	}
	return all, nil
}
