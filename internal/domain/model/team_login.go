package model

import "time"

// TeamLogin holds the credentials issued to a team on approval. The username
// is the leader's name and the password is the UTR used at registration.
type TeamLogin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"not null;uniqueIndex" json:"team_id"`
	Username  string    `gorm:"size:200;not null" json:"username"`
	Password  string    `gorm:"size:200;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeamLogin) TableName() string {
	return "team_logins"
}
