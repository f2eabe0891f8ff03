package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// SponsorInput is the create/update payload for a sponsor. LogoPath is the
// stored filename of an already-saved upload, or empty to keep the current
// logo.
type SponsorInput struct {
	Name         string `json:"name" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	WebsiteURL   string `json:"website_url"`
	LogoPath     string `json:"-"`
}

// SponsorService manages the sponsor listing.
type SponsorService struct {
	sponsors repository.SponsorRepository
	files    FileRemover
	logger   *zap.Logger
}

// NewSponsorService creates a sponsor service.
func NewSponsorService(sponsors repository.SponsorRepository, files FileRemover, logger *zap.Logger) *SponsorService {
	return &SponsorService{sponsors: sponsors, files: files, logger: logger}
}

// List returns all sponsors.
func (s *SponsorService) List(ctx context.Context) ([]model.Sponsor, error) {
	return s.sponsors.List(ctx)
}

// Create stores a new sponsor.
func (s *SponsorService) Create(ctx context.Context, input SponsorInput) (*model.Sponsor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	sponsor := &model.Sponsor{
		Name:         name,
		DisplayOrder: input.DisplayOrder,
		WebsiteURL:   strings.TrimSpace(input.WebsiteURL),
	}
	if input.LogoPath != "" {
		logo := input.LogoPath
		sponsor.LogoPath = &logo
	}
	if err := s.sponsors.Create(ctx, sponsor); err != nil {
		return nil, err
	}

	s.logger.Info("sponsor created", zap.Uint("sponsor_id", sponsor.ID), zap.String("name", name))
	return sponsor, nil
}

// Update overwrites a sponsor. A new logo replaces and deletes the old one.
func (s *SponsorService) Update(ctx context.Context, id uint, input SponsorInput) (*model.Sponsor, error) {
	existing, err := s.sponsors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domainerrors.ErrSponsorNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	sponsor := &model.Sponsor{
		ID:           id,
		Name:         name,
		DisplayOrder: input.DisplayOrder,
		WebsiteURL:   strings.TrimSpace(input.WebsiteURL),
		LogoPath:     existing.LogoPath,
	}
	if input.LogoPath != "" {
		logo := input.LogoPath
		sponsor.LogoPath = &logo
	}
	if err := s.sponsors.Update(ctx, sponsor); err != nil {
		return nil, err
	}

	if input.LogoPath != "" && existing.LogoPath != nil && *existing.LogoPath != input.LogoPath && s.files != nil {
		if err := s.files.Remove(*existing.LogoPath); err != nil {
			s.logger.Warn("failed to remove replaced logo", zap.Uint("sponsor_id", id), zap.Error(err))
		}
	}
	return sponsor, nil
}

// Delete removes a sponsor and its stored logo.
func (s *SponsorService) Delete(ctx context.Context, id uint) error {
	existing, err := s.sponsors.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainerrors.ErrSponsorNotFound
	}

	if err := s.sponsors.Delete(ctx, id); err != nil {
		return err
	}

	if existing.LogoPath != nil && s.files != nil {
		if err := s.files.Remove(*existing.LogoPath); err != nil {
			s.logger.Warn("failed to remove sponsor logo", zap.Uint("sponsor_id", id), zap.Error(err))
		}
	}
	return nil
}
