package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestFindLoginByUsername_CaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "team_id", "username", "password"}).
		AddRow(1, 7, "Sirius Black", "UTR777")
	mock.ExpectQuery(`SELECT \* FROM "team_logins" WHERE LOWER\(username\) = LOWER\(\$1\)`).
		WithArgs("sirius black", 1).
		WillReturnRows(rows)

	login, err := repo.FindLoginByUsername(context.Background(), "sirius black")

	require.NoError(t, err)
	require.NotNil(t, login)
	assert.Equal(t, uint(7), login.TeamID)
	assert.Equal(t, "Sirius Black", login.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLoginByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "team_logins"`).
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	login, err := repo.FindLoginByUsername(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, login)
}
