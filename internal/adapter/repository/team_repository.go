package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type teamRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTeamRepository creates a GORM-backed team repository.
func NewTeamRepository(db *gorm.DB, logger *zap.Logger) repository.TeamRepository {
	return &teamRepository{db: db, logger: logger}
}

func (r *teamRepository) CreateWithMembers(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(team).Error
	})
	if err != nil {
		r.logger.Error("failed to create team",
			zap.String("team_name", team.TeamName),
			zap.Error(err))
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *teamRepository) FindByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("member_number ASC")
		}).
		First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find team", zap.Uint("team_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context, filter repository.TeamFilter) ([]model.Team, error) {
	query := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("member_number ASC")
		}).
		Order("registered_at ASC")

	if filter.Status != "" {
		query = query.Where("approval_status = ?", filter.Status)
	}
	if filter.House != "" {
		query = query.Where("house = ?", filter.House)
	}
	if filter.Search != "" {
		query = query.Where("team_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.StatementID != 0 {
		query = query.Where("selected_problem_statement_id = ?", filter.StatementID)
	}

	var teams []model.Team
	if err := query.Find(&teams).Error; err != nil {
		r.logger.Error("failed to list teams", zap.Error(err))
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *teamRepository) TeamNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("LOWER(team_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error
	if err != nil {
		r.logger.Error("failed to check team name", zap.Error(err))
		return false, fmt.Errorf("failed to check team name: %w", err)
	}
	return count > 0, nil
}

func (r *teamRepository) MemberEmailExists(ctx context.Context, emails []string) (string, error) {
	if len(emails) == 0 {
		return "", nil
	}
	lowered := make([]string, 0, len(emails))
	for _, e := range emails {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(e)))
	}

	var member model.Member
	err := r.db.WithContext(ctx).
		Where("LOWER(email) IN ?", lowered).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		r.logger.Error("failed to check member emails", zap.Error(err))
		return "", fmt.Errorf("failed to check member emails: %w", err)
	}
	return member.Email, nil
}

func (r *teamRepository) Approve(ctx context.Context, teamID uint, login *model.TeamLogin) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// team_size is recomputed from the roster so members removed
		// after registration do not skew the stored count.
		result := tx.Model(&model.Team{}).
			Where("id = ?", teamID).
			Updates(map[string]interface{}{
				"approval_status": model.ApprovalStatusApproved,
				"team_size":       gorm.Expr("(SELECT COUNT(*) FROM members WHERE members.team_id = ?)", teamID),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTeamNotFound
		}

		login.TeamID = teamID
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "password"}),
		}).Create(login).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) {
			return err
		}
		r.logger.Error("failed to approve team", zap.Uint("team_id", teamID), zap.Error(err))
		return fmt.Errorf("failed to approve team: %w", err)
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, teamID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&model.TeamLogin{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&model.Member{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Team{}, teamID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTeamNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) {
			return err
		}
		r.logger.Error("failed to delete team", zap.Uint("team_id", teamID), zap.Error(err))
		return fmt.Errorf("failed to delete team: %w", err)
	}

	// Verify the cascade actually removed the row. A leftover team here
	// means the transaction silently failed and must surface as an error.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to verify team deletion: %w", err)
	}
	if count > 0 {
		r.logger.Error("team still present after delete", zap.Uint("team_id", teamID))
		return fmt.Errorf("team %d still present after delete", teamID)
	}
	return nil
}

func (r *teamRepository) SelectProblemStatement(ctx context.Context, teamID uint, statement *model.ProblemStatement) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrTeamNotFound
			}
			return err
		}
		if !team.IsApproved() {
			return domainerrors.ErrTeamNotApproved
		}
		if team.SelectedProblemStatementID != nil {
			return domainerrors.ErrStatementAlreadySelected
		}
		if statement.House != nil && *statement.House != team.House {
			return domainerrors.ErrStatementRestricted
		}

		return tx.Model(&team).Updates(map[string]interface{}{
			"selected_problem_statement_id": statement.ID,
			"house":                         statement.Domain,
		}).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) ||
			errors.Is(err, domainerrors.ErrTeamNotApproved) ||
			errors.Is(err, domainerrors.ErrStatementAlreadySelected) ||
			errors.Is(err, domainerrors.ErrStatementRestricted) {
			return err
		}
		r.logger.Error("failed to select problem statement",
			zap.Uint("team_id", teamID),
			zap.Uint("statement_id", statement.ID),
			zap.Error(err))
		return fmt.Errorf("failed to select problem statement: %w", err)
	}
	return nil
}

func (r *teamRepository) UpdateGitRepoURL(ctx context.Context, teamID uint, url string) error {
	result := r.db.WithContext(ctx).Model(&model.Team{}).
		Where("id = ?", teamID).
		Update("git_repo_url", url)
	if result.Error != nil {
		r.logger.Error("failed to update git repo url", zap.Uint("team_id", teamID), zap.Error(result.Error))
		return fmt.Errorf("failed to update git repo url: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTeamNotFound
	}
	return nil
}

func (r *teamRepository) AddMember(ctx context.Context, teamID uint, member *model.Member) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrTeamNotFound
			}
			return err
		}

		var maxOrdinal int
		row := tx.Model(&model.Member{}).
			Where("team_id = ?", teamID).
			Select("COALESCE(MAX(member_number), 0)").
			Row()
		if err := row.Scan(&maxOrdinal); err != nil {
			return err
		}

		member.TeamID = teamID
		member.MemberNumber = maxOrdinal + 1
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return tx.Model(&team).Update("team_size", gorm.Expr("team_size + 1")).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) {
			return err
		}
		r.logger.Error("failed to add member", zap.Uint("team_id", teamID), zap.Error(err))
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID, memberID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var members []model.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("team_id = ?", teamID).
			Order("member_number ASC").
			Find(&members).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return domainerrors.ErrTeamNotFound
		}
		if len(members) == 1 {
			return domainerrors.ErrLastMember
		}

		var removed *model.Member
		for i := range members {
			if members[i].ID == memberID {
				removed = &members[i]
				break
			}
		}
		if removed == nil {
			return domainerrors.ErrMemberNotFound
		}

		if err := tx.Where("team_id = ? AND id = ?", teamID, memberID).
			Delete(&model.Member{}).Error; err != nil {
			return err
		}

		// Re-number survivors so ordinals stay dense. Removing the
		// leader promotes the next-ordinal member.
		ordinal := 1
		promoted := !removed.IsLeader
		for _, m := range members {
			if m.ID == memberID {
				continue
			}
			updates := map[string]interface{}{}
			if m.MemberNumber != ordinal {
				updates["member_number"] = ordinal
			}
			if !promoted {
				updates["is_leader"] = true
				promoted = true
			}
			if len(updates) > 0 {
				if err := tx.Model(&model.Member{}).
					Where("id = ?", m.ID).
					Updates(updates).Error; err != nil {
					return err
				}
			}
			ordinal++
		}

		return tx.Model(&model.Team{}).
			Where("id = ?", teamID).
			Update("team_size", gorm.Expr("team_size - 1")).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) ||
			errors.Is(err, domainerrors.ErrMemberNotFound) ||
			errors.Is(err, domainerrors.ErrLastMember) {
			return err
		}
		r.logger.Error("failed to remove member",
			zap.Uint("team_id", teamID),
			zap.Uint("member_id", memberID),
			zap.Error(err))
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (r *teamRepository) FindLoginByUsername(ctx context.Context, username string) (*model.TeamLogin, error) {
	var login model.TeamLogin
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find team login", zap.Error(err))
		return nil, fmt.Errorf("failed to find team login: %w", err)
	}
	return &login, nil
}

func (r *teamRepository) CountByStatus(ctx context.Context) (map[model.ApprovalStatus]int64, error) {
	type statusCount struct {
		ApprovalStatus model.ApprovalStatus
		Count          int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Select("approval_status, COUNT(*) AS count").
		Group("approval_status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("failed to count teams by status", zap.Error(err))
		return nil, fmt.Errorf("failed to count teams by status: %w", err)
	}

	counts := make(map[model.ApprovalStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.ApprovalStatus] = row.Count
	}
	return counts, nil
}

func (r *teamRepository) CountByHouse(ctx context.Context) ([]repository.HouseCount, error) {
	var rows []repository.HouseCount
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Select("house, COUNT(*) AS count").
		Where("approval_status = ?", model.ApprovalStatusApproved).
		Group("house").
		Order("house ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("failed to count teams by house", zap.Error(err))
		return nil, fmt.Errorf("failed to count teams by house: %w", err)
	}
	return rows, nil
}
