package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/usecase"
)

// TeamHandler exposes team listings, rosters and the entry ticket.
type TeamHandler struct {
	teams   *usecase.TeamService
	tickets *usecase.TicketService
	logger  *zap.Logger
}

// NewTeamHandler creates a team handler.
func NewTeamHandler(teams *usecase.TeamService, tickets *usecase.TicketService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{teams: teams, tickets: tickets, logger: logger}
}

// ListPublic handles GET /api/teams?house=&search=.
func (h *TeamHandler) ListPublic(c echo.Context) error {
	teams, err := h.teams.ListPublic(c.Request().Context(), c.QueryParam("house"), c.QueryParam("search"))
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"teams": teams, "count": len(teams)})
}

// ListPending handles GET /api/admin/teams/pending.
func (h *TeamHandler) ListPending(c echo.Context) error {
	teams, err := h.teams.ListByStatus(c.Request().Context(), model.ApprovalStatusPending)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"teams": teams, "count": len(teams)})
}

// ListApproved handles GET /api/admin/teams/approved.
func (h *TeamHandler) ListApproved(c echo.Context) error {
	teams, err := h.teams.ListByStatus(c.Request().Context(), model.ApprovalStatusApproved)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"teams": teams, "count": len(teams)})
}

// Get handles GET /api/teams/:id.
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	team, err := h.teams.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"team": team})
}

// AddMember handles POST /api/admin/teams/:id/members.
func (h *TeamHandler) AddMember(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var input usecase.MemberInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	team, err := h.teams.AddMember(c.Request().Context(), id, input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{"team": team})
}

// RemoveMember handles DELETE /api/admin/teams/:id/members/:memberId.
func (h *TeamHandler) RemoveMember(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}
	team, err := h.teams.RemoveMember(c.Request().Context(), id, memberID)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"team": team})
}

// SetRepoURL handles PUT /api/teams/:id/repo.
func (h *TeamHandler) SetRepoURL(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		GitRepoURL string `json:"git_repo_url" validate:"required"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	if err := h.teams.SetGitRepoURL(c.Request().Context(), id, body.GitRepoURL); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"git_repo_url": body.GitRepoURL})
}

// Statistics handles GET /api/admin/statistics.
func (h *TeamHandler) Statistics(c echo.Context) error {
	stats, err := h.teams.Statistics(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"statistics": stats})
}

// Ticket handles GET /api/teams/:id/ticket, returning a downloadable HTML
// document.
func (h *TeamHandler) Ticket(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	doc, err := h.tickets.Render(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="ticket.html"`)
	return c.HTMLBlob(http.StatusOK, doc)
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
