package repository

import (
	"context"

	"hackathon-server/internal/domain/model"
)

// SponsorRepository persists the sponsor listing.
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *model.Sponsor) error
	Update(ctx context.Context, sponsor *model.Sponsor) error
	Delete(ctx context.Context, id uint) error

	// FindByID loads one sponsor. Returns nil when absent.
	FindByID(ctx context.Context, id uint) (*model.Sponsor, error)

	// List returns all sponsors ordered by creation time.
	List(ctx context.Context) ([]model.Sponsor, error)
}
