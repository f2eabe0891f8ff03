package repository

import (
	"context"

	"hackathon-server/internal/domain/model"
)

// AdminRepository persists operator accounts.
type AdminRepository interface {
	// FindByUsername loads one admin. Returns nil when absent.
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// Create stores a new admin with an already-hashed password.
	Create(ctx context.Context, admin *model.Admin) error
}
