package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/middleware/auth"
	"hackathon-server/internal/usecase"
)

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler exposes login and logout for admins and teams.
type AuthHandler struct {
	auth   *usecase.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(authService *usecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var body credentials
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	if err := h.auth.AdminLogin(c.Request().Context(), body.Username, body.Password); err != nil {
		return httpError(c, err)
	}
	if err := auth.MarkAdmin(c); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "admin logged in"})
}

// TeamLogin handles POST /api/teams/login with the credentials issued on
// approval.
func (h *AuthHandler) TeamLogin(c echo.Context) error {
	var body credentials
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	team, err := h.auth.TeamLogin(c.Request().Context(), body.Username, body.Password)
	if err != nil {
		return httpError(c, err)
	}
	if err := auth.MarkTeam(c, team.ID); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"team": team})
}

// Logout handles POST /api/logout for both session kinds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := auth.Clear(c); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "logged out"})
}

// Session handles GET /api/session, reporting who the cookie belongs to.
func (h *AuthHandler) Session(c echo.Context) error {
	return ok(c, http.StatusOK, envelope{
		"is_admin": auth.IsAdmin(c),
		"team_id":  auth.TeamID(c),
	})
}
