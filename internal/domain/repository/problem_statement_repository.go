package repository

import (
	"context"

	"hackathon-server/internal/domain/model"
)

// StatementFilter narrows List. Zero values mean no filtering.
type StatementFilter struct {
	Domain     model.House
	Difficulty string
}

// ProblemStatementRepository persists the challenge catalogue.
type ProblemStatementRepository interface {
	// Create stores a new statement.
	Create(ctx context.Context, statement *model.ProblemStatement) error

	// Update overwrites title, description, domain, difficulty and the
	// house restriction.
	Update(ctx context.Context, statement *model.ProblemStatement) error

	// Delete removes a statement. Teams keep their selection id; the
	// caller decides whether deletion is allowed.
	Delete(ctx context.Context, id uint) error

	// FindByID loads one statement. Returns nil when absent.
	FindByID(ctx context.Context, id uint) (*model.ProblemStatement, error)

	// List returns matching statements with SelectedCount populated.
	List(ctx context.Context, filter StatementFilter) ([]model.ProblemStatement, error)
}
