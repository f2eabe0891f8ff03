package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hackathon-server/internal/domain/model"
)

func TestSettings_UnknownKeyRejected(t *testing.T) {
	svc := NewSettingsService(new(mockSettingsRepository), zap.NewNop())

	_, err := svc.Get(context.Background(), "surprise_feature")
	assert.Error(t, err)

	err = svc.Set(context.Background(), "surprise_feature", true)
	assert.Error(t, err)
}

func TestSettings_UnsetKeysReadAsDisabled(t *testing.T) {
	settings := new(mockSettingsRepository)
	settings.On("All", mock.Anything).Return(map[string]bool{
		model.SettingRegistrationOpen: true,
	}, nil)

	svc := NewSettingsService(settings, zap.NewNop())
	all, err := svc.All(context.Background())

	require.NoError(t, err)
	assert.True(t, all[model.SettingRegistrationOpen])
	assert.False(t, all[model.SettingTeamsEnabled])
	assert.False(t, all[model.SettingLeaderboardOpen])
	assert.False(t, all[model.SettingLoginEnabled])
	assert.Len(t, all, 4)
}

func TestSettings_SetKnownKey(t *testing.T) {
	settings := new(mockSettingsRepository)
	settings.On("Set", mock.Anything, model.SettingLeaderboardOpen, true).Return(nil)

	svc := NewSettingsService(settings, zap.NewNop())
	require.NoError(t, svc.Set(context.Background(), model.SettingLeaderboardOpen, true))
	settings.AssertExpectations(t)
}
