package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// RoundResult is one round's score with the reviewer's comment.
type RoundResult struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// LeaderboardEntry is one ranked team with its per-round results.
type LeaderboardEntry struct {
	Rank     int                 `json:"rank"`
	TeamID   uint                `json:"team_id"`
	TeamName string              `json:"team_name"`
	House    model.House         `json:"house"`
	Rounds   map[int]RoundResult `json:"rounds"`
	Total    int                 `json:"total"`
}

// LeaderboardService ranks approved teams by total review marks.
type LeaderboardService struct {
	teams    repository.TeamRepository
	reviews  repository.ReviewRepository
	settings repository.SettingsRepository
	logger   *zap.Logger
}

// NewLeaderboardService creates a leaderboard service.
func NewLeaderboardService(
	teams repository.TeamRepository,
	reviews repository.ReviewRepository,
	settings repository.SettingsRepository,
	logger *zap.Logger,
) *LeaderboardService {
	return &LeaderboardService{teams: teams, reviews: reviews, settings: settings, logger: logger}
}

// Standings returns approved teams ordered by descending total, ties broken
// by team name. Admin callers bypass the visibility toggle.
func (s *LeaderboardService) Standings(ctx context.Context, isAdmin bool) ([]LeaderboardEntry, error) {
	if !isAdmin {
		open, err := s.settings.Get(ctx, model.SettingLeaderboardOpen)
		if err != nil {
			return nil, err
		}
		if !open {
			return nil, domainerrors.ErrLeaderboardClosed
		}
	}

	teams, err := s.teams.List(ctx, repository.TeamFilter{Status: model.ApprovalStatusApproved})
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resultsByTeam := make(map[uint]map[int]RoundResult, len(teams))
	for _, r := range reviews {
		if !model.ValidRound(r.Round) {
			continue
		}
		if resultsByTeam[r.TeamID] == nil {
			resultsByTeam[r.TeamID] = make(map[int]RoundResult, model.ReviewRoundMax)
		}
		resultsByTeam[r.TeamID][r.Round] = RoundResult{Score: r.Marks, Comment: r.Feedback}
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		entry := LeaderboardEntry{
			TeamID:   team.ID,
			TeamName: team.TeamName,
			House:    team.House,
			Rounds:   make(map[int]RoundResult, model.ReviewRoundMax),
		}
		for round := model.ReviewRoundMin; round <= model.ReviewRoundMax; round++ {
			result := resultsByTeam[team.ID][round]
			entry.Rounds[round] = result
			entry.Total += result.Score
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return strings.ToLower(entries[i].TeamName) < strings.ToLower(entries[j].TeamName)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
