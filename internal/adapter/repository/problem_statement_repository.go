package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type problemStatementRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProblemStatementRepository creates a GORM-backed statement repository.
func NewProblemStatementRepository(db *gorm.DB, logger *zap.Logger) repository.ProblemStatementRepository {
	return &problemStatementRepository{db: db, logger: logger}
}

func (r *problemStatementRepository) Create(ctx context.Context, statement *model.ProblemStatement) error {
	if err := r.db.WithContext(ctx).Create(statement).Error; err != nil {
		r.logger.Error("failed to create problem statement", zap.Error(err))
		return fmt.Errorf("failed to create problem statement: %w", err)
	}
	return nil
}

func (r *problemStatementRepository) Update(ctx context.Context, statement *model.ProblemStatement) error {
	result := r.db.WithContext(ctx).Model(&model.ProblemStatement{}).
		Where("id = ?", statement.ID).
		Updates(map[string]interface{}{
			"title":       statement.Title,
			"description": statement.Description,
			"domain":      statement.Domain,
			"difficulty":  statement.Difficulty,
			"house":       statement.House,
		})
	if result.Error != nil {
		r.logger.Error("failed to update problem statement",
			zap.Uint("statement_id", statement.ID),
			zap.Error(result.Error))
		return fmt.Errorf("failed to update problem statement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStatementNotFound
	}
	return nil
}

func (r *problemStatementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ProblemStatement{}, id)
	if result.Error != nil {
		r.logger.Error("failed to delete problem statement", zap.Uint("statement_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete problem statement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStatementNotFound
	}
	return nil
}

func (r *problemStatementRepository) FindByID(ctx context.Context, id uint) (*model.ProblemStatement, error) {
	var statement model.ProblemStatement
	err := r.db.WithContext(ctx).First(&statement, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find problem statement", zap.Uint("statement_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find problem statement: %w", err)
	}
	return &statement, nil
}

func (r *problemStatementRepository) List(ctx context.Context, filter repository.StatementFilter) ([]model.ProblemStatement, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ProblemStatement{}).
		Select("problem_statements.*, COUNT(teams.id) AS selected_count").
		Joins("LEFT JOIN teams ON teams.selected_problem_statement_id = problem_statements.id").
		Group("problem_statements.id").
		Order("problem_statements.id ASC")
	if filter.Domain != "" {
		query = query.Where("problem_statements.domain = ?", filter.Domain)
	}
	if filter.Difficulty != "" {
		query = query.Where("problem_statements.difficulty = ?", filter.Difficulty)
	}

	var statements []model.ProblemStatement
	err := query.Scan(&statements).Error
	if err != nil {
		r.logger.Error("failed to list problem statements", zap.Error(err))
		return nil, fmt.Errorf("failed to list problem statements: %w", err)
	}
	return statements, nil
}
