package model

// Member is one person on a team roster. MemberNumber is a 1-based ordinal
// within the team. Exactly one member per team carries the leader flag.
type Member struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TeamID       uint   `gorm:"not null;index" json:"team_id"`
	MemberNumber int    `gorm:"not null" json:"member_number"`
	Name         string `gorm:"size:200;not null" json:"name"`
	Email        string `gorm:"size:255;not null" json:"email"`
	Phone        string `gorm:"size:30;not null" json:"phone"`
	College      string `gorm:"size:300" json:"college"`
	Year         string `gorm:"size:50" json:"year"`
	IsLeader     bool   `gorm:"not null;default:false" json:"is_leader"`
}

func (Member) TableName() string {
	return "members"
}
