package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type adminRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAdminRepository creates a GORM-backed admin repository.
func NewAdminRepository(db *gorm.DB, logger *zap.Logger) repository.AdminRepository {
	return &adminRepository{db: db, logger: logger}
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find admin", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		r.logger.Error("failed to create admin", zap.String("username", admin.Username), zap.Error(err))
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}
