package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hackathon-server/internal/domain/model"
)

// Migrate runs the schema migration. Models are migrated in dependency order
// so foreign keys resolve.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	models := []interface{}{
		&model.ProblemStatement{},
		&model.Team{},
		&model.Member{},
		&model.TeamLogin{},
		&model.Review{},
		&model.Admin{},
		&model.AdminSetting{},
		&model.Sponsor{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}

	if err := createCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to create custom indexes: %w", err)
	}

	log.Info("database migration completed")
	return nil
}

// createCustomIndexes adds the constraints AutoMigrate cannot express.
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// Team names are unique case-insensitively.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name_lower ON teams (LOWER(team_name))`,
		// One registration per member email across all teams.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_members_email_lower ON members (LOWER(email))`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}
