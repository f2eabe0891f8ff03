package repository

import (
	"context"

	"hackathon-server/internal/domain/model"
)

// TeamFilter narrows team listings.
type TeamFilter struct {
	// Status restricts to an approval status when set.
	Status model.ApprovalStatus
	// House restricts to one house when set.
	House model.House
	// Search matches team names case-insensitively when set.
	Search string
	// StatementID restricts to teams that selected the statement when set.
	StatementID uint
}

// HouseCount pairs a house with the number of teams in it.
type HouseCount struct {
	House model.House `json:"house"`
	Count int64       `json:"count"`
}

// TeamRepository persists teams, their rosters and their issued logins.
type TeamRepository interface {
	// CreateWithMembers stores the team and its roster in one transaction.
	CreateWithMembers(ctx context.Context, team *model.Team) error

	// FindByID loads a team with its members. Returns nil when absent.
	FindByID(ctx context.Context, id uint) (*model.Team, error)

	// List returns teams matching the filter, members preloaded, ordered
	// by registration time.
	List(ctx context.Context, filter TeamFilter) ([]model.Team, error)

	// TeamNameExists reports whether a team already uses the name,
	// compared case-insensitively.
	TeamNameExists(ctx context.Context, name string) (bool, error)

	// MemberEmailExists returns the first of the given emails already on
	// a roster, or "" when none collide.
	MemberEmailExists(ctx context.Context, emails []string) (string, error)

	// Approve marks the team approved and stores its login credentials in
	// one transaction. An existing login row is overwritten.
	Approve(ctx context.Context, teamID uint, login *model.TeamLogin) error

	// Delete removes the team together with its members, reviews and
	// login in one transaction.
	Delete(ctx context.Context, teamID uint) error

	// SelectProblemStatement locks the team onto a statement and moves it
	// into the statement's house. Fails with ErrStatementAlreadySelected
	// when the team already holds a selection.
	SelectProblemStatement(ctx context.Context, teamID uint, statement *model.ProblemStatement) error

	// UpdateGitRepoURL stores the team's repository URL.
	UpdateGitRepoURL(ctx context.Context, teamID uint, url string) error

	// AddMember appends a member at the next ordinal and bumps the team
	// size.
	AddMember(ctx context.Context, teamID uint, member *model.Member) error

	// RemoveMember deletes a member, compacts the remaining ordinals and
	// decrements the team size. Removing member 1 promotes the next
	// member to leader.
	RemoveMember(ctx context.Context, teamID, memberID uint) error

	// FindLoginByUsername loads a team login. Returns nil when absent.
	FindLoginByUsername(ctx context.Context, username string) (*model.TeamLogin, error)

	// CountByStatus tallies teams per approval status.
	CountByStatus(ctx context.Context) (map[model.ApprovalStatus]int64, error)

	// CountByHouse tallies approved teams per house.
	CountByHouse(ctx context.Context) ([]HouseCount, error)
}
