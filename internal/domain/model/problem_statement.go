package model

// Difficulty labels for problem statements.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether d is one of the known difficulty labels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ProblemStatement is a challenge a team can pick exactly once. Domain values
// mirror the house set; picking a statement moves the team into that house.
// A nil House leaves the statement open to every team; a set House restricts
// selection to teams already sorted into it.
type ProblemStatement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:300;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Domain      House  `gorm:"size:50;not null" json:"domain"`
	Difficulty  string `gorm:"size:20;not null" json:"difficulty"`
	House       *House `gorm:"size:50" json:"house"`

	// SelectedCount is filled by queries that count selecting teams; it is
	// not a persisted column.
	SelectedCount int64 `gorm:"-" json:"selected_count"`
}

func (ProblemStatement) TableName() string {
	return "problem_statements"
}
