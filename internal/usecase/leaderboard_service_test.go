package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
)

func TestStandings_ClosedForPublic(t *testing.T) {
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingLeaderboardOpen).Return(false, nil)

	svc := NewLeaderboardService(new(mockTeamRepository), new(mockReviewRepository), settings, zap.NewNop())
	_, err := svc.Standings(context.Background(), false)
	assert.ErrorIs(t, err, domainerrors.ErrLeaderboardClosed)
}

func TestStandings_AdminBypassesToggle(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	settings := new(mockSettingsRepository)
	teams.On("List", mock.Anything, mock.Anything).Return([]model.Team{}, nil)
	reviews.On("ListAll", mock.Anything).Return([]model.Review{}, nil)

	svc := NewLeaderboardService(teams, reviews, settings, zap.NewNop())
	entries, err := svc.Standings(context.Background(), true)

	require.NoError(t, err)
	assert.Empty(t, entries)
	settings.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestStandings_OrdersByTotalThenName(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingLeaderboardOpen).Return(true, nil)
	teams.On("List", mock.Anything, mock.Anything).Return([]model.Team{
		{ID: 1, TeamName: "Slytherin Squad", House: model.HouseSlytherin, ApprovalStatus: model.ApprovalStatusApproved},
		{ID: 2, TeamName: "Alpha", House: model.HouseMuggles, ApprovalStatus: model.ApprovalStatusApproved},
		{ID: 3, TeamName: "Bravo", House: model.HouseRavenclaw, ApprovalStatus: model.ApprovalStatusApproved},
	}, nil)
	reviews.On("ListAll", mock.Anything).Return([]model.Review{
		{TeamID: 1, Round: 1, Marks: 40, Feedback: "Solid demo"},
		{TeamID: 1, Round: 2, Marks: 50, Feedback: "Improved"},
		{TeamID: 2, Round: 1, Marks: 60},
		{TeamID: 3, Round: 1, Marks: 60},
	}, nil)

	svc := NewLeaderboardService(teams, reviews, settings, zap.NewNop())
	entries, err := svc.Standings(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, uint(1), entries[0].TeamID)
	assert.Equal(t, 90, entries[0].Total)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, RoundResult{Score: 40, Comment: "Solid demo"}, entries[0].Rounds[1])
	assert.Equal(t, RoundResult{Score: 50, Comment: "Improved"}, entries[0].Rounds[2])
	assert.Equal(t, RoundResult{}, entries[0].Rounds[3])

	// Tie at 60 breaks alphabetically.
	assert.Equal(t, "Alpha", entries[1].TeamName)
	assert.Equal(t, "Bravo", entries[2].TeamName)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestStandings_UnscoredTeamShowsZeroRounds(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingLeaderboardOpen).Return(true, nil)
	teams.On("List", mock.Anything, mock.Anything).Return([]model.Team{
		{ID: 5, TeamName: "Fresh", ApprovalStatus: model.ApprovalStatusApproved},
	}, nil)
	reviews.On("ListAll", mock.Anything).Return([]model.Review{}, nil)

	svc := NewLeaderboardService(teams, reviews, settings, zap.NewNop())
	entries, err := svc.Standings(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Total)
	assert.Equal(t, map[int]RoundResult{1: {}, 2: {}, 3: {}}, entries[0].Rounds)
}
