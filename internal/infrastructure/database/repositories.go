package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "hackathon-server/internal/adapter/repository"
	"hackathon-server/internal/domain/repository"
)

// Repositories bundles every repository implementation behind its interface.
type Repositories struct {
	Team             repository.TeamRepository
	ProblemStatement repository.ProblemStatementRepository
	Review           repository.ReviewRepository
	Settings         repository.SettingsRepository
	Sponsor          repository.SponsorRepository
	Admin            repository.AdminRepository
	Export           repository.ExportRepository
}

// NewRepositories wires the GORM implementations.
func NewRepositories(db *gorm.DB, log *zap.Logger) *Repositories {
	return &Repositories{
		Team:             adapterrepo.NewTeamRepository(db, log),
		ProblemStatement: adapterrepo.NewProblemStatementRepository(db, log),
		Review:           adapterrepo.NewReviewRepository(db, log),
		Settings:         adapterrepo.NewSettingsRepository(db, log),
		Sponsor:          adapterrepo.NewSponsorRepository(db, log),
		Admin:            adapterrepo.NewAdminRepository(db, log),
		Export:           adapterrepo.NewExportRepository(db, log),
	}
}
