package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
)

func TestTicketRender_EmbedsTeamAndCrest(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "gryffindor.png"), []byte{0x89, 0x50, 0x4e, 0x47}, 0o644))

	teams := new(mockTeamRepository)
	teams.On("FindByID", mock.Anything, uint(3)).Return(&model.Team{
		ID:             3,
		TeamName:       "Order of the Phoenix",
		House:          model.HouseGryffindor,
		TeamSize:       1,
		ApprovalStatus: model.ApprovalStatusApproved,
		Members: []model.Member{
			{MemberNumber: 1, Name: "Sirius Black", Email: "sirius@order.org", IsLeader: true},
		},
	}, nil)

	svc := NewTicketService(teams, assets, zap.NewNop())
	doc, err := svc.Render(context.Background(), 3)

	require.NoError(t, err)
	html := string(doc)
	assert.Contains(t, html, "Order of the Phoenix")
	assert.Contains(t, html, "Sirius Black")
	assert.Contains(t, html, "data:image/png;base64,")
}

func TestTicketRender_MissingCrestStillRenders(t *testing.T) {
	teams := new(mockTeamRepository)
	teams.On("FindByID", mock.Anything, uint(3)).Return(&model.Team{
		ID:             3,
		TeamName:       "Crestless",
		House:          model.HouseMuggles,
		ApprovalStatus: model.ApprovalStatusApproved,
	}, nil)

	svc := NewTicketService(teams, t.TempDir(), zap.NewNop())
	doc, err := svc.Render(context.Background(), 3)

	require.NoError(t, err)
	assert.Contains(t, string(doc), "Crestless")
	assert.NotContains(t, string(doc), "data:image/png")
}

func TestTicketRender_PendingTeamRejected(t *testing.T) {
	teams := new(mockTeamRepository)
	teams.On("FindByID", mock.Anything, uint(3)).Return(&model.Team{
		ID: 3, ApprovalStatus: model.ApprovalStatusPending,
	}, nil)

	svc := NewTicketService(teams, t.TempDir(), zap.NewNop())
	_, err := svc.Render(context.Background(), 3)
	assert.ErrorIs(t, err, domainerrors.ErrTeamNotApproved)
}
