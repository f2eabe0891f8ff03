package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
)

func validRegistration() RegisterTeamInput {
	return RegisterTeamInput{
		TeamName:         "Dumbledore's Army",
		House:            "gryffindor",
		TeamSize:         2,
		UTRTransactionID: "UTR123456",
		Members: []MemberInput{
			{Name: "Harry Potter", Email: "harry@hogwarts.edu", Phone: "9990001111", College: "Hogwarts"},
			{Name: "Hermione Granger", Email: "hermione@hogwarts.edu", Phone: "9990002222", College: "Hogwarts"},
		},
	}
}

func TestRegister_ClosedRegistration(t *testing.T) {
	teams := new(mockTeamRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(false, nil)

	svc := NewRegistrationService(teams, settings, zap.NewNop())
	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, domainerrors.ErrRegistrationClosed)
	teams.AssertNotCalled(t, "CreateWithMembers", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateTeamName(t *testing.T) {
	teams := new(mockTeamRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(true, nil)
	teams.On("TeamNameExists", mock.Anything, "Dumbledore's Army").Return(true, nil)

	svc := NewRegistrationService(teams, settings, zap.NewNop())
	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateTeamName)
}

func TestRegister_DuplicateEmailWithinPayload(t *testing.T) {
	teams := new(mockTeamRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(true, nil)
	teams.On("TeamNameExists", mock.Anything, mock.Anything).Return(false, nil)

	input := validRegistration()
	input.Members[1].Email = "Harry@Hogwarts.edu"

	svc := NewRegistrationService(teams, settings, zap.NewNop())
	_, err := svc.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateMemberEmail)
}

func TestRegister_DuplicateEmailAcrossTeams(t *testing.T) {
	teams := new(mockTeamRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(true, nil)
	teams.On("TeamNameExists", mock.Anything, mock.Anything).Return(false, nil)
	teams.On("MemberEmailExists", mock.Anything, mock.Anything).Return("harry@hogwarts.edu", nil)

	svc := NewRegistrationService(teams, settings, zap.NewNop())
	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateMemberEmail)
	teams.AssertNotCalled(t, "CreateWithMembers", mock.Anything, mock.Anything)
}

func TestRegister_SizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		edit func(*RegisterTeamInput)
	}{
		{"size exceeds roster", func(in *RegisterTeamInput) { in.TeamSize = 3 }},
		{"size above maximum", func(in *RegisterTeamInput) {
			in.TeamSize = 5
			for i := 0; i < 3; i++ {
				in.Members = append(in.Members, MemberInput{
					Name: "Extra", Email: "extra@hogwarts.edu", Phone: "1",
				})
			}
		}},
		{"size below minimum", func(in *RegisterTeamInput) { in.TeamSize = 0; in.Members = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := new(mockTeamRepository)
			settings := new(mockSettingsRepository)
			settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(true, nil)

			input := validRegistration()
			tt.edit(&input)

			svc := NewRegistrationService(teams, settings, zap.NewNop())
			_, err := svc.Register(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidTeamSize)
		})
	}
}

func TestRegister_InvalidHouse(t *testing.T) {
	teams := new(mockTeamRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(true, nil)

	input := validRegistration()
	input.House = "Durmstrang"

	svc := NewRegistrationService(teams, settings, zap.NewNop())
	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidHouse)
}

func TestRegister_Success(t *testing.T) {
	teams := new(mockTeamRepository)
	settings := new(mockSettingsRepository)
	settings.On("Get", mock.Anything, model.SettingRegistrationOpen).Return(true, nil)
	teams.On("TeamNameExists", mock.Anything, "Dumbledore's Army").Return(false, nil)
	teams.On("MemberEmailExists", mock.Anything, []string{"harry@hogwarts.edu", "hermione@hogwarts.edu"}).
		Return("", nil)

	var created *model.Team
	teams.On("CreateWithMembers", mock.Anything, mock.AnythingOfType("*model.Team")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Team)
			created.ID = 7
		}).
		Return(nil)
	teams.On("FindByID", mock.Anything, uint(7)).
		Return(&model.Team{ID: 7, TeamName: "Dumbledore's Army", ApprovalStatus: model.ApprovalStatusPending}, nil)

	svc := NewRegistrationService(teams, settings, zap.NewNop())
	team, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	require.NotNil(t, team)
	assert.Equal(t, uint(7), team.ID)
	assert.Equal(t, model.ApprovalStatusPending, team.ApprovalStatus)

	require.NotNil(t, created)
	assert.Equal(t, model.HouseGryffindor, created.House)
	require.Len(t, created.Members, 2)
	assert.True(t, created.Members[0].IsLeader)
	assert.False(t, created.Members[1].IsLeader)
	assert.Equal(t, 1, created.Members[0].MemberNumber)
	assert.Equal(t, 2, created.Members[1].MemberNumber)
	assert.Equal(t, "harry@hogwarts.edu", created.Members[0].Email)
}
