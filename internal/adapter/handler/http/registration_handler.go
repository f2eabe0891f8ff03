package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/usecase"
)

// Uploader stores incoming files. Satisfied by storage.LocalStore.
type Uploader interface {
	SaveMultipart(c echo.Context, field string) (string, error)
}

// RegistrationHandler exposes the public sign-up endpoint.
type RegistrationHandler struct {
	registration *usecase.RegistrationService
	uploads      Uploader
	logger       *zap.Logger
}

// NewRegistrationHandler creates a registration handler.
func NewRegistrationHandler(registration *usecase.RegistrationService, uploads Uploader, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{registration: registration, uploads: uploads, logger: logger}
}

// Register handles POST /api/register. The payload arrives either as JSON
// or as a multipart form carrying an optional payment proof file; in the
// multipart case the roster is a JSON array in the "members" field.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var input usecase.RegisterTeamInput

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		input.TeamName = c.FormValue("team_name")
		input.House = c.FormValue("house")
		input.UTRTransactionID = c.FormValue("utr_transaction_id")
		if size, err := strconv.Atoi(c.FormValue("team_size")); err == nil {
			input.TeamSize = size
		}
		if membersRaw := c.FormValue("members"); membersRaw != "" {
			if err := json.Unmarshal([]byte(membersRaw), &input.Members); err != nil {
				return fail(c, http.StatusBadRequest, "malformed members payload")
			}
		}

		stored, err := h.uploads.SaveMultipart(c, "payment_proof")
		if err != nil {
			return httpError(c, err)
		}
		input.PaymentProofPath = stored
	} else {
		if err := c.Bind(&input); err != nil {
			return fail(c, http.StatusBadRequest, "malformed request body")
		}
		if err := c.Validate(&input); err != nil {
			return err
		}
	}

	team, err := h.registration.Register(c.Request().Context(), input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{"team": team})
}
