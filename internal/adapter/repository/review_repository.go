package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type reviewRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewReviewRepository creates a GORM-backed review repository.
func NewReviewRepository(db *gorm.DB, logger *zap.Logger) repository.ReviewRepository {
	return &reviewRepository{db: db, logger: logger}
}

func (r *reviewRepository) Upsert(ctx context.Context, review *model.Review) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "round"}},
		DoUpdates: clause.AssignmentColumns([]string{"marks", "feedback", "criteria", "updated_at"}),
	}).Create(review).Error
	if err != nil {
		r.logger.Error("failed to upsert review",
			zap.Uint("team_id", review.TeamID),
			zap.Int("round", review.Round),
			zap.Error(err))
		return fmt.Errorf("failed to upsert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) FindByTeam(ctx context.Context, teamID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("round ASC").
		Find(&reviews).Error
	if err != nil {
		r.logger.Error("failed to find reviews", zap.Uint("team_id", teamID), zap.Error(err))
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Order("team_id ASC, round ASC").
		Find(&reviews).Error
	if err != nil {
		r.logger.Error("failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
