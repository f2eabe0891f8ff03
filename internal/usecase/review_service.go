package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// ReviewInput is one round's score submission. Criteria carries the named
// per-criterion marks behind the round's overall score.
type ReviewInput struct {
	Round    int                    `json:"round" validate:"required"`
	Marks    int                    `json:"marks" validate:"gte=0"`
	Feedback string                 `json:"feedback" validate:"required"`
	Criteria []model.CriterionScore `json:"criteria"`
}

// TeamScores is the full judging view for one team.
type TeamScores struct {
	TeamID uint                     `json:"team_id"`
	Rounds map[int]model.RoundScore `json:"rounds"`
	Total  int                      `json:"total"`
}

// ReviewService records judging scores per team and round.
type ReviewService struct {
	reviews repository.ReviewRepository
	teams   repository.TeamRepository
	logger  *zap.Logger
}

// NewReviewService creates a review service.
func NewReviewService(
	reviews repository.ReviewRepository,
	teams repository.TeamRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{reviews: reviews, teams: teams, logger: logger}
}

// SubmitRound stores one round's score for an approved team. Re-submitting a
// round overwrites the previous score; other rounds are untouched.
func (s *ReviewService) SubmitRound(ctx context.Context, teamID uint, input ReviewInput) (*TeamScores, error) {
	if !model.ValidRound(input.Round) {
		return nil, domainerrors.ErrInvalidRound
	}
	if input.Marks < 0 {
		return nil, domainerrors.ErrInvalidMarks
	}
	if strings.TrimSpace(input.Feedback) == "" {
		return nil, domainerrors.ErrFeedbackRequired
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainerrors.ErrTeamNotFound
	}
	if !team.IsApproved() {
		return nil, domainerrors.ErrTeamNotApproved
	}

	criteria := input.Criteria
	if criteria == nil {
		criteria = []model.CriterionScore{}
	}
	blob, err := json.Marshal(criteria)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		TeamID:   teamID,
		Round:    input.Round,
		Marks:    input.Marks,
		Feedback: input.Feedback,
		Criteria: datatypes.JSON(blob),
	}
	if err := s.reviews.Upsert(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review submitted",
		zap.Uint("team_id", teamID),
		zap.Int("round", input.Round),
		zap.Int("marks", input.Marks))

	return s.Scores(ctx, teamID)
}

// Scores returns all three rounds for a team. Unscored rounds read as zero
// marks with empty feedback and criteria.
func (s *ReviewService) Scores(ctx context.Context, teamID uint) (*TeamScores, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainerrors.ErrTeamNotFound
	}

	stored, err := s.reviews.FindByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	scores := &TeamScores{
		TeamID: teamID,
		Rounds: make(map[int]model.RoundScore, model.ReviewRoundMax),
	}
	for round := model.ReviewRoundMin; round <= model.ReviewRoundMax; round++ {
		scores.Rounds[round] = model.EmptyRoundScore()
	}
	for _, r := range stored {
		if !model.ValidRound(r.Round) {
			continue
		}
		scores.Rounds[r.Round] = model.RoundScore{
			Marks:    r.Marks,
			Feedback: r.Feedback,
			Criteria: decodeCriteria(r.Criteria),
		}
		scores.Total += r.Marks
	}
	return scores, nil
}

// decodeCriteria tolerates malformed blobs by degrading to an empty list.
func decodeCriteria(blob datatypes.JSON) []model.CriterionScore {
	if len(blob) == 0 {
		return []model.CriterionScore{}
	}
	var criteria []model.CriterionScore
	if err := json.Unmarshal(blob, &criteria); err != nil || criteria == nil {
		return []model.CriterionScore{}
	}
	return criteria
}
