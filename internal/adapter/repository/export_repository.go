package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hackathon-server/internal/domain/repository"
)

// exportTables lists every table included in a snapshot, in a stable order.
var exportTables = []string{
	"teams",
	"members",
	"team_logins",
	"problem_statements",
	"reviews",
	"admin_settings",
	"sponsors",
}

type exportRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewExportRepository creates a GORM-backed export repository.
func NewExportRepository(db *gorm.DB, logger *zap.Logger) repository.ExportRepository {
	return &exportRepository{db: db, logger: logger}
}

func (r *exportRepository) Snapshot(ctx context.Context) (map[string][]map[string]interface{}, error) {
	snapshot := make(map[string][]map[string]interface{}, len(exportTables))
	for _, table := range exportTables {
		var rows []map[string]interface{}
		if err := r.db.WithContext(ctx).Table(table).Order("id ASC").Find(&rows).Error; err != nil {
			r.logger.Error("failed to snapshot table", zap.String("table", table), zap.Error(err))
			return nil, fmt.Errorf("failed to snapshot table %s: %w", table, err)
		}
		if rows == nil {
			rows = []map[string]interface{}{}
		}
		snapshot[table] = rows
	}
	return snapshot, nil
}
