package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
	"hackathon-server/internal/infrastructure/mail"
)

// Mailer delivers transactional email. Satisfied by mail.Sender.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// FileRemover deletes stored uploads. Satisfied by storage.LocalStore.
type FileRemover interface {
	Remove(name string) error
}

// ApprovalService moves registrations through admin review.
type ApprovalService struct {
	teams  repository.TeamRepository
	mailer Mailer
	files  FileRemover
	logger *zap.Logger
}

// NewApprovalService creates an approval service. mailer may be nil when no
// SMTP relay is configured; approvals then skip the notification.
func NewApprovalService(
	teams repository.TeamRepository,
	mailer Mailer,
	files FileRemover,
	logger *zap.Logger,
) *ApprovalService {
	return &ApprovalService{teams: teams, mailer: mailer, files: files, logger: logger}
}

// Approve marks the team approved and issues its login, username being the
// leader's name and password the registration transaction id. Credentials
// are re-synchronized on repeat approval so a corrected transaction id
// propagates. The returned warning is non-empty when the notification email
// could not be sent; email failure never fails the approval itself.
func (s *ApprovalService) Approve(ctx context.Context, teamID uint) (*model.Team, string, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, "", err
	}
	if team == nil {
		return nil, "", domainerrors.ErrTeamNotFound
	}

	leader := team.Leader()
	if leader == nil {
		return nil, "", fmt.Errorf("team %d has no members", teamID)
	}

	login := &model.TeamLogin{
		TeamID:   team.ID,
		Username: leader.Name,
		Password: team.UTRTransactionID,
	}
	if err := s.teams.Approve(ctx, team.ID, login); err != nil {
		return nil, "", err
	}

	approved, err := s.teams.FindByID(ctx, team.ID)
	if err != nil {
		return nil, "", err
	}

	warning := ""
	if s.mailer != nil {
		subject, body := mail.ApprovalEmail(team.TeamName, login.Username, login.Password)
		if err := s.mailer.Send(leader.Email, subject, body); err != nil {
			s.logger.Warn("approval email failed",
				zap.Uint("team_id", team.ID),
				zap.String("to", leader.Email),
				zap.Error(err))
			warning = "team approved but the notification email could not be sent"
		}
	}

	s.logger.Info("team approved",
		zap.Uint("team_id", team.ID),
		zap.String("team_name", team.TeamName))

	return approved, warning, nil
}

// Reject irrevocably deletes the team with every dependent row. The stored
// payment proof is removed best-effort after the database commit.
func (s *ApprovalService) Reject(ctx context.Context, teamID uint) error {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return domainerrors.ErrTeamNotFound
	}

	if err := s.teams.Delete(ctx, teamID); err != nil {
		return err
	}

	if team.PaymentProofPath != nil && s.files != nil {
		if err := s.files.Remove(*team.PaymentProofPath); err != nil {
			s.logger.Warn("failed to remove payment proof",
				zap.Uint("team_id", teamID),
				zap.Error(err))
		}
	}

	s.logger.Info("team rejected and deleted",
		zap.Uint("team_id", teamID),
		zap.String("team_name", team.TeamName))
	return nil
}
