package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ApprovalStatus is the lifecycle state of a team registration.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
)

func (s *ApprovalStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = ApprovalStatus(v)
	case []byte:
		*s = ApprovalStatus(v)
	default:
		return fmt.Errorf("unsupported approval status type: %T", value)
	}
	return nil
}

func (s ApprovalStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Team is a registered hackathon team. A team is created in pending state and
// only participates (login, problem selection, reviews) once approved.
type Team struct {
	ID                         uint           `gorm:"primaryKey" json:"id"`
	TeamName                   string         `gorm:"size:200;not null" json:"team_name"`
	House                      House          `gorm:"size:50;not null" json:"house"`
	TeamSize                   int            `gorm:"not null" json:"team_size"`
	UTRTransactionID           string         `gorm:"column:utr_transaction_id;size:100;not null" json:"utr_transaction_id"`
	PaymentProofPath           *string        `gorm:"size:500" json:"payment_proof_path,omitempty"`
	ApprovalStatus             ApprovalStatus `gorm:"size:20;not null;default:'pending'" json:"approval_status"`
	SelectedProblemStatementID *uint          `json:"selected_problem_statement_id,omitempty"`
	GitRepoURL                 *string        `gorm:"size:500" json:"git_repo_url,omitempty"`
	RegisteredAt               time.Time      `gorm:"autoCreateTime" json:"registered_at"`

	Members []Member `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

// Leader returns the flagged leader, falling back to the lowest ordinal
// when no flag is set. Returns nil for an empty roster.
func (t *Team) Leader() *Member {
	var lowest *Member
	for i := range t.Members {
		m := &t.Members[i]
		if m.IsLeader {
			return m
		}
		if lowest == nil || m.MemberNumber < lowest.MemberNumber {
			lowest = m
		}
	}
	return lowest
}

// IsApproved reports whether the team has passed admin review.
func (t *Team) IsApproved() bool {
	return t.ApprovalStatus == ApprovalStatusApproved
}
