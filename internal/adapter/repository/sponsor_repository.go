package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type sponsorRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSponsorRepository creates a GORM-backed sponsor repository.
func NewSponsorRepository(db *gorm.DB, logger *zap.Logger) repository.SponsorRepository {
	return &sponsorRepository{db: db, logger: logger}
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor *model.Sponsor) error {
	if err := r.db.WithContext(ctx).Create(sponsor).Error; err != nil {
		r.logger.Error("failed to create sponsor", zap.Error(err))
		return fmt.Errorf("failed to create sponsor: %w", err)
	}
	return nil
}

func (r *sponsorRepository) Update(ctx context.Context, sponsor *model.Sponsor) error {
	result := r.db.WithContext(ctx).Model(&model.Sponsor{}).
		Where("id = ?", sponsor.ID).
		Updates(map[string]interface{}{
			"name":          sponsor.Name,
			"display_order": sponsor.DisplayOrder,
			"website_url":   sponsor.WebsiteURL,
			"logo_path":     sponsor.LogoPath,
		})
	if result.Error != nil {
		r.logger.Error("failed to update sponsor", zap.Uint("sponsor_id", sponsor.ID), zap.Error(result.Error))
		return fmt.Errorf("failed to update sponsor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSponsorNotFound
	}
	return nil
}

func (r *sponsorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Sponsor{}, id)
	if result.Error != nil {
		r.logger.Error("failed to delete sponsor", zap.Uint("sponsor_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete sponsor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSponsorNotFound
	}
	return nil
}

func (r *sponsorRepository) FindByID(ctx context.Context, id uint) (*model.Sponsor, error) {
	var sponsor model.Sponsor
	err := r.db.WithContext(ctx).First(&sponsor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find sponsor", zap.Uint("sponsor_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find sponsor: %w", err)
	}
	return &sponsor, nil
}

func (r *sponsorRepository) List(ctx context.Context) ([]model.Sponsor, error) {
	var sponsors []model.Sponsor
	err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&sponsors).Error
	if err != nil {
		r.logger.Error("failed to list sponsors", zap.Error(err))
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return sponsors, nil
}
