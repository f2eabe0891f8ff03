package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
	"hackathon-server/internal/middleware/auth"
	"hackathon-server/internal/usecase"
)

// StatementHandler exposes the challenge catalogue and team selection.
type StatementHandler struct {
	statements *usecase.StatementService
	logger     *zap.Logger
}

// NewStatementHandler creates a statement handler.
func NewStatementHandler(statements *usecase.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{statements: statements, logger: logger}
}

// List handles GET /api/problem-statements. Accepts optional domain and
// difficulty query filters.
func (h *StatementHandler) List(c echo.Context) error {
	filter := repository.StatementFilter{
		Domain:     model.House(c.QueryParam("domain")),
		Difficulty: c.QueryParam("difficulty"),
	}
	statements, err := h.statements.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"problem_statements": statements})
}

// Get handles GET /api/problem-statements/:id.
func (h *StatementHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	statement, err := h.statements.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"problem_statement": statement})
}

// Teams handles GET /api/problem-statements/:id/teams.
func (h *StatementHandler) Teams(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	teams, err := h.statements.SelectingTeams(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"teams": teams})
}

// Create handles POST /api/admin/problem-statements.
func (h *StatementHandler) Create(c echo.Context) error {
	var input usecase.StatementInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	statement, err := h.statements.Create(c.Request().Context(), input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{"problem_statement": statement})
}

// Update handles PUT /api/admin/problem-statements/:id.
func (h *StatementHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var input usecase.StatementInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	statement, err := h.statements.Update(c.Request().Context(), id, input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"problem_statement": statement})
}

// Delete handles DELETE /api/admin/problem-statements/:id.
func (h *StatementHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.statements.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "problem statement deleted"})
}

// Select handles POST /api/teams/select-statement for the team portal. The
// team comes from the session; the selection is one-shot.
func (h *StatementHandler) Select(c echo.Context) error {
	teamID := auth.TeamID(c)
	if teamID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "team login required")
	}

	var body struct {
		ProblemStatementID uint `json:"problem_statement_id" validate:"required"`
	}
	if err := c.Bind(&body); err != nil || body.ProblemStatementID == 0 {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}

	team, err := h.statements.Select(c.Request().Context(), teamID, body.ProblemStatementID)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"team": team})
}
