package usecase

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// TeamStatistics is the admin dashboard summary.
type TeamStatistics struct {
	TotalTeams    int64                  `json:"total_teams"`
	PendingTeams  int64                  `json:"pending_teams"`
	ApprovedTeams int64                  `json:"approved_teams"`
	ByHouse       []repository.HouseCount `json:"by_house"`
}

// TeamService serves team listings and roster edits.
type TeamService struct {
	teams    repository.TeamRepository
	settings repository.SettingsRepository
	logger   *zap.Logger
}

// NewTeamService creates a team service.
func NewTeamService(
	teams repository.TeamRepository,
	settings repository.SettingsRepository,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{teams: teams, settings: settings, logger: logger}
}

// ListPublic returns approved teams for the public site, optionally filtered
// by house or a case-insensitive name search. Fails when the listing toggle
// is off.
func (s *TeamService) ListPublic(ctx context.Context, house, search string) ([]model.Team, error) {
	enabled, err := s.settings.Get(ctx, model.SettingTeamsEnabled)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, domainerrors.ErrTeamsDisabled
	}

	filter := repository.TeamFilter{
		Status: model.ApprovalStatusApproved,
		Search: strings.TrimSpace(search),
	}
	if house != "" {
		if !model.IsValidHouse(house) {
			return nil, domainerrors.ErrInvalidHouse
		}
		filter.House = model.NormalizeHouse(house)
	}
	return s.teams.List(ctx, filter)
}

// ListByStatus returns teams in one approval state for the admin console.
func (s *TeamService) ListByStatus(ctx context.Context, status model.ApprovalStatus) ([]model.Team, error) {
	return s.teams.List(ctx, repository.TeamFilter{Status: status})
}

// Get loads one team with its roster.
func (s *TeamService) Get(ctx context.Context, id uint) (*model.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainerrors.ErrTeamNotFound
	}
	return team, nil
}

// AddMember appends a member to the roster, capped at MaxTeamSize, with the
// same global email uniqueness rule as registration.
func (s *TeamService) AddMember(ctx context.Context, teamID uint, input MemberInput) (*model.Team, error) {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(team.Members) >= MaxTeamSize {
		return nil, domainerrors.ErrInvalidTeamSize
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Phone) == "" {
		return nil, domainerrors.ErrMissingFields
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if dup, err := s.teams.MemberEmailExists(ctx, []string{email}); err != nil {
		return nil, err
	} else if dup != "" {
		return nil, domainerrors.ErrDuplicateMemberEmail
	}

	member := &model.Member{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		College: strings.TrimSpace(input.College),
		Year:    strings.TrimSpace(input.Year),
	}
	if err := s.teams.AddMember(ctx, teamID, member); err != nil {
		return nil, err
	}

	s.logger.Info("member added", zap.Uint("team_id", teamID), zap.String("email", email))
	return s.Get(ctx, teamID)
}

// RemoveMember drops a member from the roster. The last member cannot be
// removed; removing the leader promotes the next member.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, memberID uint) (*model.Team, error) {
	if err := s.teams.RemoveMember(ctx, teamID, memberID); err != nil {
		return nil, err
	}
	s.logger.Info("member removed", zap.Uint("team_id", teamID), zap.Uint("member_id", memberID))
	return s.Get(ctx, teamID)
}

// SetGitRepoURL stores the team's repository link after a light sanity
// check on the URL.
func (s *TeamService) SetGitRepoURL(ctx context.Context, teamID uint, repoURL string) error {
	repoURL = strings.TrimSpace(repoURL)
	parsed, err := url.Parse(repoURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return domainerrors.ErrMissingFields
	}
	return s.teams.UpdateGitRepoURL(ctx, teamID, repoURL)
}

// Statistics tallies registrations for the admin dashboard.
func (s *TeamService) Statistics(ctx context.Context) (*TeamStatistics, error) {
	byStatus, err := s.teams.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byHouse, err := s.teams.CountByHouse(ctx)
	if err != nil {
		return nil, err
	}

	stats := &TeamStatistics{
		PendingTeams:  byStatus[model.ApprovalStatusPending],
		ApprovedTeams: byStatus[model.ApprovalStatusApproved],
		ByHouse:       byHouse,
	}
	stats.TotalTeams = stats.PendingTeams + stats.ApprovedTeams
	return stats, nil
}
