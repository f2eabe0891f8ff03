package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// Roster size limits enforced at registration and edit time.
const (
	MinTeamSize = 1
	MaxTeamSize = 4
)

// MemberInput is one roster entry submitted at registration.
type MemberInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	College string `json:"college"`
	Year    string `json:"year"`
}

// RegisterTeamInput is the registration payload. PaymentProofPath is the
// stored filename of an already-saved upload, or empty.
type RegisterTeamInput struct {
	TeamName         string        `json:"team_name" validate:"required"`
	House            string        `json:"house" validate:"required"`
	TeamSize         int           `json:"team_size" validate:"required"`
	UTRTransactionID string        `json:"utr_transaction_id" validate:"required"`
	PaymentProofPath string        `json:"-"`
	Members          []MemberInput `json:"members" validate:"required,dive"`
}

// RegistrationService handles new team sign-ups.
type RegistrationService struct {
	teams    repository.TeamRepository
	settings repository.SettingsRepository
	logger   *zap.Logger
}

// NewRegistrationService creates a registration service.
func NewRegistrationService(
	teams repository.TeamRepository,
	settings repository.SettingsRepository,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{teams: teams, settings: settings, logger: logger}
}

// Register validates and stores a new team with its roster. Nothing is
// persisted on any validation failure. The created team is re-read before
// being returned so a success response implies durable storage.
func (s *RegistrationService) Register(ctx context.Context, input RegisterTeamInput) (*model.Team, error) {
	open, err := s.settings.Get(ctx, model.SettingRegistrationOpen)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, domainerrors.ErrRegistrationClosed
	}

	teamName := strings.Join(strings.Fields(input.TeamName), " ")
	if teamName == "" || strings.TrimSpace(input.UTRTransactionID) == "" {
		return nil, fmt.Errorf("%w: team name and transaction id", domainerrors.ErrMissingFields)
	}
	if !model.IsValidHouse(input.House) {
		return nil, domainerrors.ErrInvalidHouse
	}
	if input.TeamSize < MinTeamSize || input.TeamSize > MaxTeamSize || len(input.Members) != input.TeamSize {
		return nil, domainerrors.ErrInvalidTeamSize
	}

	taken, err := s.teams.TeamNameExists(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrDuplicateTeamName
	}

	emails := make([]string, 0, len(input.Members))
	seen := make(map[string]bool, len(input.Members))
	for _, m := range input.Members {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Phone) == "" {
			return nil, fmt.Errorf("%w: member name, email and phone", domainerrors.ErrMissingFields)
		}
		email := strings.ToLower(strings.TrimSpace(m.Email))
		if seen[email] {
			return nil, domainerrors.ErrDuplicateMemberEmail
		}
		seen[email] = true
		emails = append(emails, email)
	}

	if dup, err := s.teams.MemberEmailExists(ctx, emails); err != nil {
		return nil, err
	} else if dup != "" {
		return nil, domainerrors.ErrDuplicateMemberEmail
	}

	team := &model.Team{
		TeamName:         teamName,
		House:            model.NormalizeHouse(input.House),
		TeamSize:         input.TeamSize,
		UTRTransactionID: strings.TrimSpace(input.UTRTransactionID),
		ApprovalStatus:   model.ApprovalStatusPending,
	}
	if input.PaymentProofPath != "" {
		path := input.PaymentProofPath
		team.PaymentProofPath = &path
	}
	for i, m := range input.Members {
		team.Members = append(team.Members, model.Member{
			MemberNumber: i + 1,
			Name:         strings.TrimSpace(m.Name),
			Email:        strings.ToLower(strings.TrimSpace(m.Email)),
			Phone:        strings.TrimSpace(m.Phone),
			College:      strings.TrimSpace(m.College),
			Year:         strings.TrimSpace(m.Year),
			IsLeader:     i == 0,
		})
	}

	if err := s.teams.CreateWithMembers(ctx, team); err != nil {
		return nil, err
	}

	created, err := s.teams.FindByID(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("team %d missing after create", team.ID)
	}

	s.logger.Info("team registered",
		zap.Uint("team_id", created.ID),
		zap.String("team_name", created.TeamName),
		zap.String("house", string(created.House)),
		zap.Int("team_size", created.TeamSize))

	return created, nil
}
