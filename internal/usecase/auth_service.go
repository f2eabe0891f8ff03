package usecase

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hackathon-server/internal/config"
	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// AuthService checks admin and team credentials.
type AuthService struct {
	admins   repository.AdminRepository
	teams    repository.TeamRepository
	settings repository.SettingsRepository
	cfg      config.ServiceConfig
	logger   *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(
	admins repository.AdminRepository,
	teams repository.TeamRepository,
	settings repository.SettingsRepository,
	cfg config.ServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{admins: admins, teams: teams, settings: settings, cfg: cfg, logger: logger}
}

// EnsureAdmin creates the configured operator account on first boot so the
// fixed credential ends up bcrypt-hashed in the database.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminUsername == "" {
		return nil
	}
	existing, err := s.admins.FindByUsername(ctx, s.cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.admins.Create(ctx, &model.Admin{
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}
	s.logger.Info("operator account created", zap.String("username", s.cfg.AdminUsername))
	return nil
}

// AdminLogin validates operator credentials against stored accounts,
// falling back to the fixed credential from configuration.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) error {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if admin != nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil {
			return nil
		}
		return domainerrors.ErrInvalidCredentials
	}

	if s.cfg.AdminUsername != "" &&
		subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1 {
		return nil
	}

	s.logger.Warn("admin login failed", zap.String("username", username))
	return domainerrors.ErrInvalidCredentials
}

// TeamLogin validates team portal credentials and returns the team. Only
// approved teams hold a login, and the portal can be switched off entirely
// through the login_enabled toggle.
func (s *AuthService) TeamLogin(ctx context.Context, username, password string) (*model.Team, error) {
	enabled, err := s.settings.Get(ctx, model.SettingLoginEnabled)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, domainerrors.ErrLoginDisabled
	}

	login, err := s.teams.FindLoginByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if login == nil || subtle.ConstantTimeCompare([]byte(login.Password), []byte(password)) != 1 {
		s.logger.Warn("team login failed", zap.String("username", username))
		return nil, domainerrors.ErrInvalidCredentials
	}

	team, err := s.teams.FindByID(ctx, login.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainerrors.ErrTeamNotFound
	}
	if !team.IsApproved() {
		return nil, domainerrors.ErrTeamNotApproved
	}
	return team, nil
}
