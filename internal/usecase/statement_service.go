package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// StatementInput is the create/update payload for a problem statement. House
// is optional; when set it restricts selection to teams of that house.
type StatementInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Domain      string  `json:"domain" validate:"required"`
	Difficulty  string  `json:"difficulty" validate:"required"`
	House       *string `json:"house"`
}

// StatementService manages the challenge catalogue and team selections.
type StatementService struct {
	statements repository.ProblemStatementRepository
	teams      repository.TeamRepository
	logger     *zap.Logger
}

// NewStatementService creates a statement service.
func NewStatementService(
	statements repository.ProblemStatementRepository,
	teams repository.TeamRepository,
	logger *zap.Logger,
) *StatementService {
	return &StatementService{statements: statements, teams: teams, logger: logger}
}

// List returns statements matching the filter with their selection counts.
func (s *StatementService) List(ctx context.Context, filter repository.StatementFilter) ([]model.ProblemStatement, error) {
	if filter.Domain != "" {
		if !model.IsValidHouse(string(filter.Domain)) {
			return nil, domainerrors.ErrInvalidHouse
		}
		filter.Domain = model.NormalizeHouse(string(filter.Domain))
	}
	if filter.Difficulty != "" {
		filter.Difficulty = strings.ToLower(strings.TrimSpace(filter.Difficulty))
		if !model.ValidDifficulty(filter.Difficulty) {
			return nil, domainerrors.ErrInvalidDifficulty
		}
	}
	return s.statements.List(ctx, filter)
}

// Get loads one statement.
func (s *StatementService) Get(ctx context.Context, id uint) (*model.ProblemStatement, error) {
	statement, err := s.statements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if statement == nil {
		return nil, domainerrors.ErrStatementNotFound
	}
	return statement, nil
}

// Create stores a new statement.
func (s *StatementService) Create(ctx context.Context, input StatementInput) (*model.ProblemStatement, error) {
	statement, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.statements.Create(ctx, statement); err != nil {
		return nil, err
	}
	s.logger.Info("problem statement created",
		zap.Uint("statement_id", statement.ID),
		zap.String("title", statement.Title))
	return statement, nil
}

// Update overwrites an existing statement.
func (s *StatementService) Update(ctx context.Context, id uint, input StatementInput) (*model.ProblemStatement, error) {
	statement, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}
	statement.ID = id
	if err := s.statements.Update(ctx, statement); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a statement from the catalogue.
func (s *StatementService) Delete(ctx context.Context, id uint) error {
	if err := s.statements.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("problem statement deleted", zap.Uint("statement_id", id))
	return nil
}

// Select locks an approved team onto a statement. The choice is one-shot
// and moves the team into the statement's domain house.
func (s *StatementService) Select(ctx context.Context, teamID, statementID uint) (*model.Team, error) {
	statement, err := s.Get(ctx, statementID)
	if err != nil {
		return nil, err
	}

	if err := s.teams.SelectProblemStatement(ctx, teamID, statement); err != nil {
		return nil, err
	}

	s.logger.Info("problem statement selected",
		zap.Uint("team_id", teamID),
		zap.Uint("statement_id", statementID),
		zap.String("house", string(statement.Domain)))

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainerrors.ErrTeamNotFound
	}
	return team, nil
}

// SelectingTeams lists the teams that picked the statement.
func (s *StatementService) SelectingTeams(ctx context.Context, statementID uint) ([]model.Team, error) {
	if _, err := s.Get(ctx, statementID); err != nil {
		return nil, err
	}
	return s.teams.List(ctx, repository.TeamFilter{StatementID: statementID})
}

func (s *StatementService) fromInput(input StatementInput) (*model.ProblemStatement, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if !model.IsValidHouse(input.Domain) {
		return nil, domainerrors.ErrInvalidHouse
	}
	difficulty := strings.ToLower(strings.TrimSpace(input.Difficulty))
	if !model.ValidDifficulty(difficulty) {
		return nil, domainerrors.ErrInvalidDifficulty
	}

	statement := &model.ProblemStatement{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Domain:      model.NormalizeHouse(input.Domain),
		Difficulty:  difficulty,
	}
	if input.House != nil && *input.House != "" {
		if !model.IsValidHouse(*input.House) {
			return nil, domainerrors.ErrInvalidHouse
		}
		house := model.NormalizeHouse(*input.House)
		statement.House = &house
	}
	return statement, nil
}
