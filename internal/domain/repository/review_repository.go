package repository

import (
	"context"

	"hackathon-server/internal/domain/model"
)

// ReviewRepository persists judging scores, one row per team and round.
type ReviewRepository interface {
	// Upsert stores the score for (team, round), replacing any previous
	// score for that round.
	Upsert(ctx context.Context, review *model.Review) error

	// FindByTeam returns the stored rounds for one team.
	FindByTeam(ctx context.Context, teamID uint) ([]model.Review, error)

	// ListAll returns every stored review, used for leaderboard totals.
	ListAll(ctx context.Context) ([]model.Review, error)
}
