package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

type mockTeamRepository struct {
	mock.Mock
}

func (m *mockTeamRepository) CreateWithMembers(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *mockTeamRepository) FindByID(ctx context.Context, id uint) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamRepository) List(ctx context.Context, filter repository.TeamFilter) ([]model.Team, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *mockTeamRepository) TeamNameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamRepository) MemberEmailExists(ctx context.Context, emails []string) (string, error) {
	args := m.Called(ctx, emails)
	return args.String(0), args.Error(1)
}

func (m *mockTeamRepository) Approve(ctx context.Context, teamID uint, login *model.TeamLogin) error {
	args := m.Called(ctx, teamID, login)
	return args.Error(0)
}

func (m *mockTeamRepository) Delete(ctx context.Context, teamID uint) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *mockTeamRepository) SelectProblemStatement(ctx context.Context, teamID uint, statement *model.ProblemStatement) error {
	args := m.Called(ctx, teamID, statement)
	return args.Error(0)
}

func (m *mockTeamRepository) UpdateGitRepoURL(ctx context.Context, teamID uint, url string) error {
	args := m.Called(ctx, teamID, url)
	return args.Error(0)
}

func (m *mockTeamRepository) AddMember(ctx context.Context, teamID uint, member *model.Member) error {
	args := m.Called(ctx, teamID, member)
	return args.Error(0)
}

func (m *mockTeamRepository) RemoveMember(ctx context.Context, teamID, memberID uint) error {
	args := m.Called(ctx, teamID, memberID)
	return args.Error(0)
}

func (m *mockTeamRepository) FindLoginByUsername(ctx context.Context, username string) (*model.TeamLogin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamLogin), args.Error(1)
}

func (m *mockTeamRepository) CountByStatus(ctx context.Context) (map[model.ApprovalStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.ApprovalStatus]int64), args.Error(1)
}

func (m *mockTeamRepository) CountByHouse(ctx context.Context) ([]repository.HouseCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HouseCount), args.Error(1)
}

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) Get(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockSettingsRepository) Set(ctx context.Context, key string, enabled bool) error {
	args := m.Called(ctx, key, enabled)
	return args.Error(0)
}

func (m *mockSettingsRepository) All(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Upsert(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindByTeam(ctx context.Context, teamID uint) ([]model.Review, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *mockReviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

type mockStatementRepository struct {
	mock.Mock
}

func (m *mockStatementRepository) Create(ctx context.Context, statement *model.ProblemStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *mockStatementRepository) Update(ctx context.Context, statement *model.ProblemStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *mockStatementRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStatementRepository) FindByID(ctx context.Context, id uint) (*model.ProblemStatement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProblemStatement), args.Error(1)
}

func (m *mockStatementRepository) List(ctx context.Context, filter repository.StatementFilter) ([]model.ProblemStatement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProblemStatement), args.Error(1)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

type mockFileRemover struct {
	mock.Mock
}

func (m *mockFileRemover) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
