package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "hackathon-server/internal/domain/errors"
)

// envelope is the common success payload shape.
type envelope map[string]interface{}

// ok writes a success envelope merged with the given fields.
func ok(c echo.Context, status int, fields envelope) error {
	body := envelope{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(status, body)
}

// fail writes an error envelope.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{"error": message})
}

// httpError maps domain errors onto status codes. Unrecognized errors
// surface as 500 with a sanitized message.
func httpError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, domainerrors.ErrDuplicateTeamName),
		errors.Is(err, domainerrors.ErrDuplicateMemberEmail),
		errors.Is(err, domainerrors.ErrInvalidTeamSize),
		errors.Is(err, domainerrors.ErrMissingFields),
		errors.Is(err, domainerrors.ErrInvalidHouse),
		errors.Is(err, domainerrors.ErrInvalidRound),
		errors.Is(err, domainerrors.ErrInvalidMarks),
		errors.Is(err, domainerrors.ErrFeedbackRequired),
		errors.Is(err, domainerrors.ErrStatementAlreadySelected),
		errors.Is(err, domainerrors.ErrStatementRestricted),
		errors.Is(err, domainerrors.ErrInvalidDifficulty),
		errors.Is(err, domainerrors.ErrLastMember),
		errors.Is(err, domainerrors.ErrUnsupportedFileType),
		errors.Is(err, domainerrors.ErrTeamsDisabled),
		errors.Is(err, domainerrors.ErrLeaderboardClosed):
		return fail(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrUnauthorized):
		return fail(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, domainerrors.ErrRegistrationClosed),
		errors.Is(err, domainerrors.ErrLoginDisabled),
		errors.Is(err, domainerrors.ErrTeamNotApproved):
		return fail(c, http.StatusForbidden, err.Error())

	case errors.Is(err, domainerrors.ErrTeamNotFound),
		errors.Is(err, domainerrors.ErrMemberNotFound),
		errors.Is(err, domainerrors.ErrStatementNotFound),
		errors.Is(err, domainerrors.ErrSponsorNotFound),
		errors.Is(err, domainerrors.ErrFileNotFound):
		return fail(c, http.StatusNotFound, err.Error())

	default:
		return fail(c, http.StatusInternalServerError, "internal server error")
	}
}
