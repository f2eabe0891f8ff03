package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
)

func approvedTeam(id uint) *model.Team {
	return &model.Team{ID: id, TeamName: "Team", ApprovalStatus: model.ApprovalStatusApproved}
}

func TestSubmitRound_InvalidRound(t *testing.T) {
	svc := NewReviewService(new(mockReviewRepository), new(mockTeamRepository), zap.NewNop())

	for _, round := range []int{0, 4, -1} {
		_, err := svc.SubmitRound(context.Background(), 1, ReviewInput{Round: round, Marks: 50, Feedback: "ok"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRound)
	}
}

func TestSubmitRound_RejectsNegativeMarks(t *testing.T) {
	svc := NewReviewService(new(mockReviewRepository), new(mockTeamRepository), zap.NewNop())

	_, err := svc.SubmitRound(context.Background(), 1, ReviewInput{Round: 1, Marks: -5, Feedback: "ok"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMarks)
}

func TestSubmitRound_RequiresFeedback(t *testing.T) {
	svc := NewReviewService(new(mockReviewRepository), new(mockTeamRepository), zap.NewNop())

	for _, feedback := range []string{"", "   ", "\t\n"} {
		_, err := svc.SubmitRound(context.Background(), 1, ReviewInput{Round: 1, Marks: 50, Feedback: feedback})
		assert.ErrorIs(t, err, domainerrors.ErrFeedbackRequired)
	}
}

func TestSubmitRound_RequiresApprovedTeam(t *testing.T) {
	teams := new(mockTeamRepository)
	teams.On("FindByID", mock.Anything, uint(1)).
		Return(&model.Team{ID: 1, ApprovalStatus: model.ApprovalStatusPending}, nil)

	svc := NewReviewService(new(mockReviewRepository), teams, zap.NewNop())
	_, err := svc.SubmitRound(context.Background(), 1, ReviewInput{Round: 1, Marks: 50, Feedback: "ok"})
	assert.ErrorIs(t, err, domainerrors.ErrTeamNotApproved)
}

func TestSubmitRound_UpsertsSingleRound(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	teams.On("FindByID", mock.Anything, uint(1)).Return(approvedTeam(1), nil)
	reviews.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Review")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*model.Review)
			assert.Equal(t, uint(1), r.TeamID)
			assert.Equal(t, 2, r.Round)
			assert.Equal(t, 85, r.Marks)
			assert.Equal(t, "Great start", r.Feedback)
		}).
		Return(nil)
	reviews.On("FindByTeam", mock.Anything, uint(1)).
		Return([]model.Review{{TeamID: 1, Round: 2, Marks: 85, Feedback: "Great start"}}, nil)

	svc := NewReviewService(reviews, teams, zap.NewNop())
	scores, err := svc.SubmitRound(context.Background(), 1, ReviewInput{
		Round: 2, Marks: 85, Feedback: "Great start",
	})

	require.NoError(t, err)
	assert.Equal(t, 85, scores.Rounds[2].Marks)
	assert.Equal(t, 0, scores.Rounds[1].Marks)
	assert.Equal(t, 0, scores.Rounds[3].Marks)
	assert.Equal(t, 85, scores.Total)
}

func TestSubmitRound_AcceptsMarksAboveOneHundred(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	teams.On("FindByID", mock.Anything, uint(1)).Return(approvedTeam(1), nil)
	reviews.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Review")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*model.Review)
			assert.Equal(t, 150, r.Marks)
		}).
		Return(nil)
	reviews.On("FindByTeam", mock.Anything, uint(1)).
		Return([]model.Review{{TeamID: 1, Round: 1, Marks: 150, Feedback: "Bonus round"}}, nil)

	svc := NewReviewService(reviews, teams, zap.NewNop())
	scores, err := svc.SubmitRound(context.Background(), 1, ReviewInput{
		Round: 1, Marks: 150, Feedback: "Bonus round",
	})

	require.NoError(t, err)
	assert.Equal(t, 150, scores.Rounds[1].Marks)
	assert.Equal(t, 150, scores.Total)
}

func TestScores_UnscoredRoundsReadAsEmpty(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	teams.On("FindByID", mock.Anything, uint(1)).Return(approvedTeam(1), nil)
	reviews.On("FindByTeam", mock.Anything, uint(1)).Return([]model.Review{}, nil)

	svc := NewReviewService(reviews, teams, zap.NewNop())
	scores, err := svc.Scores(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 0, scores.Total)
	for round := 1; round <= 3; round++ {
		assert.Equal(t, model.RoundScore{Marks: 0, Feedback: "", Criteria: []model.CriterionScore{}}, scores.Rounds[round])
	}
}

func TestScores_MalformedCriteriaDegradesToEmpty(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	teams.On("FindByID", mock.Anything, uint(1)).Return(approvedTeam(1), nil)
	reviews.On("FindByTeam", mock.Anything, uint(1)).Return([]model.Review{
		{TeamID: 1, Round: 1, Marks: 70, Criteria: datatypes.JSON(`{"not":"a list"`)},
	}, nil)

	svc := NewReviewService(reviews, teams, zap.NewNop())
	scores, err := svc.Scores(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 70, scores.Rounds[1].Marks)
	assert.Equal(t, []model.CriterionScore{}, scores.Rounds[1].Criteria)
}

func TestScores_CriteriaRoundTrip(t *testing.T) {
	teams := new(mockTeamRepository)
	reviews := new(mockReviewRepository)
	teams.On("FindByID", mock.Anything, uint(1)).Return(approvedTeam(1), nil)
	reviews.On("FindByTeam", mock.Anything, uint(1)).Return([]model.Review{
		{TeamID: 1, Round: 3, Marks: 90, Criteria: datatypes.JSON(`[{"name":"innovation","marks":50},{"name":"execution","marks":40}]`)},
	}, nil)

	svc := NewReviewService(reviews, teams, zap.NewNop())
	scores, err := svc.Scores(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []model.CriterionScore{
		{Name: "innovation", Marks: 50},
		{Name: "execution", Marks: 40},
	}, scores.Rounds[3].Criteria)
	assert.Equal(t, 90, scores.Total)
}
