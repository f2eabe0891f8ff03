package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "hackathon-server/internal/domain/errors"
)

func mapStatus(t *testing.T, err error) int {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, httpError(c, err))
	return rec.Code
}

func TestHTTPErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domainerrors.ErrRegistrationClosed, http.StatusForbidden},
		{domainerrors.ErrLoginDisabled, http.StatusForbidden},
		{domainerrors.ErrTeamNotApproved, http.StatusForbidden},
		{domainerrors.ErrDuplicateTeamName, http.StatusBadRequest},
		{domainerrors.ErrDuplicateMemberEmail, http.StatusBadRequest},
		{domainerrors.ErrFeedbackRequired, http.StatusBadRequest},
		{domainerrors.ErrInvalidMarks, http.StatusBadRequest},
		{domainerrors.ErrStatementRestricted, http.StatusBadRequest},
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainerrors.ErrTeamNotFound, http.StatusNotFound},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, mapStatus(t, tt.err))
		})
	}
}
