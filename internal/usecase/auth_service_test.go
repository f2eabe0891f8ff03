package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hackathon-server/internal/config"
	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
)

func loginEnabledSettings() *mockSettingsRepository {
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingLoginEnabled).Return(true, nil)
	return settings
}

func TestAdminLogin_StoredAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	admins := new(mockAdminRepository)
	admins.On("FindByUsername", mock.Anything, "minerva").
		Return(&model.Admin{Username: "minerva", PasswordHash: string(hash)}, nil)

	svc := NewAuthService(admins, new(mockTeamRepository), loginEnabledSettings(), config.ServiceConfig{}, zap.NewNop())

	assert.NoError(t, svc.AdminLogin(context.Background(), "minerva", "s3cret"))
	assert.ErrorIs(t, svc.AdminLogin(context.Background(), "minerva", "wrong"), domainerrors.ErrInvalidCredentials)
}

func TestAdminLogin_ConfigFallback(t *testing.T) {
	admins := new(mockAdminRepository)
	admins.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, nil)

	cfg := config.ServiceConfig{AdminUsername: "root", AdminPassword: "toor"}
	svc := NewAuthService(admins, new(mockTeamRepository), loginEnabledSettings(), cfg, zap.NewNop())

	assert.NoError(t, svc.AdminLogin(context.Background(), "root", "toor"))
	assert.ErrorIs(t, svc.AdminLogin(context.Background(), "root", "nope"), domainerrors.ErrInvalidCredentials)
}

func TestTeamLogin_Success(t *testing.T) {
	teams := new(mockTeamRepository)
	teams.On("FindLoginByUsername", mock.Anything, "Sirius Black").
		Return(&model.TeamLogin{TeamID: 3, Username: "Sirius Black", Password: "UTR777"}, nil)
	teams.On("FindByID", mock.Anything, uint(3)).
		Return(&model.Team{ID: 3, ApprovalStatus: model.ApprovalStatusApproved}, nil)

	svc := NewAuthService(new(mockAdminRepository), teams, loginEnabledSettings(), config.ServiceConfig{}, zap.NewNop())
	team, err := svc.TeamLogin(context.Background(), "Sirius Black", "UTR777")

	require.NoError(t, err)
	assert.Equal(t, uint(3), team.ID)
}

func TestTeamLogin_WrongPassword(t *testing.T) {
	teams := new(mockTeamRepository)
	teams.On("FindLoginByUsername", mock.Anything, "Sirius Black").
		Return(&model.TeamLogin{TeamID: 3, Password: "UTR777"}, nil)

	svc := NewAuthService(new(mockAdminRepository), teams, loginEnabledSettings(), config.ServiceConfig{}, zap.NewNop())
	_, err := svc.TeamLogin(context.Background(), "Sirius Black", "guess")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestTeamLogin_DisabledToggle(t *testing.T) {
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingLoginEnabled).Return(false, nil)
	teams := new(mockTeamRepository)

	svc := NewAuthService(new(mockAdminRepository), teams, settings, config.ServiceConfig{}, zap.NewNop())
	_, err := svc.TeamLogin(context.Background(), "Sirius Black", "UTR777")

	assert.ErrorIs(t, err, domainerrors.ErrLoginDisabled)
	teams.AssertNotCalled(t, "FindLoginByUsername", mock.Anything, mock.Anything)
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("creates missing account with hashed password", func(t *testing.T) {
		admins := new(mockAdminRepository)
		admins.On("FindByUsername", mock.Anything, "root").Return(nil, nil)
		admins.On("Create", mock.Anything, mock.AnythingOfType("*model.Admin")).
			Run(func(args mock.Arguments) {
				admin := args.Get(1).(*model.Admin)
				assert.Equal(t, "root", admin.Username)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("toor")))
			}).
			Return(nil)

		cfg := config.ServiceConfig{AdminUsername: "root", AdminPassword: "toor"}
		svc := NewAuthService(admins, new(mockTeamRepository), loginEnabledSettings(), cfg, zap.NewNop())
		require.NoError(t, svc.EnsureAdmin(context.Background()))
		admins.AssertExpectations(t)
	})

	t.Run("existing account untouched", func(t *testing.T) {
		admins := new(mockAdminRepository)
		admins.On("FindByUsername", mock.Anything, "root").Return(&model.Admin{Username: "root"}, nil)

		cfg := config.ServiceConfig{AdminUsername: "root", AdminPassword: "toor"}
		svc := NewAuthService(admins, new(mockTeamRepository), loginEnabledSettings(), cfg, zap.NewNop())
		require.NoError(t, svc.EnsureAdmin(context.Background()))
		admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTeamLogin_UnknownUsername(t *testing.T) {
	teams := new(mockTeamRepository)
	teams.On("FindLoginByUsername", mock.Anything, "nobody").Return(nil, nil)

	svc := NewAuthService(new(mockAdminRepository), teams, loginEnabledSettings(), config.ServiceConfig{}, zap.NewNop())
	_, err := svc.TeamLogin(context.Background(), "nobody", "x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
