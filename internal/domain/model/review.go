package model

import (
	"time"

	"gorm.io/datatypes"
)

// Review rounds run 1 through 3.
const (
	ReviewRoundMin = 1
	ReviewRoundMax = 3
)

// Review is one judging round's score for a team. Each team holds at most
// one row per round; re-submitting a round overwrites the previous score.
type Review struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	TeamID   uint           `gorm:"not null;uniqueIndex:idx_reviews_team_round" json:"team_id"`
	Round    int            `gorm:"not null;uniqueIndex:idx_reviews_team_round" json:"round"`
	Marks    int            `gorm:"not null;default:0" json:"marks"`
	Feedback string         `gorm:"type:text" json:"feedback"`
	Criteria datatypes.JSON `json:"criteria"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// CriterionScore is one named criterion mark inside a round review.
type CriterionScore struct {
	Name  string `json:"name"`
	Marks int    `json:"marks"`
}

// RoundScore is the per-round view returned to clients. Rounds without a
// stored review render as a zero score with empty feedback and criteria.
type RoundScore struct {
	Marks    int              `json:"marks"`
	Feedback string           `json:"feedback"`
	Criteria []CriterionScore `json:"criteria"`
}

// EmptyRoundScore is the placeholder for an unscored round.
func EmptyRoundScore() RoundScore {
	return RoundScore{Marks: 0, Feedback: "", Criteria: []CriterionScore{}}
}

// ValidRound reports whether round is within the judging range.
func ValidRound(round int) bool {
	return round >= ReviewRoundMin && round <= ReviewRoundMax
}
