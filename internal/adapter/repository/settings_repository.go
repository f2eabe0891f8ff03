package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type settingsRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a GORM-backed settings repository.
func NewSettingsRepository(db *gorm.DB, logger *zap.Logger) repository.SettingsRepository {
	return &settingsRepository{db: db, logger: logger}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (bool, error) {
	var setting model.AdminSetting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		r.logger.Error("failed to read setting", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return setting.Enabled, nil
}

func (r *settingsRepository) Set(ctx context.Context, key string, enabled bool) error {
	setting := model.AdminSetting{Key: key, Enabled: enabled}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled"}),
	}).Create(&setting).Error
	if err != nil {
		r.logger.Error("failed to write setting", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepository) All(ctx context.Context) (map[string]bool, error) {
	var settings []model.AdminSetting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		r.logger.Error("failed to list settings", zap.Error(err))
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	all := make(map[string]bool, len(settings))
	for _, s := range settings {
		all[s.Key] = s.Enabled
	}
	return all, nil
}
