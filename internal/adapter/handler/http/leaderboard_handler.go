package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/middleware/auth"
	"hackathon-server/internal/usecase"
)

// LeaderboardHandler exposes the public standings.
type LeaderboardHandler struct {
	leaderboard *usecase.LeaderboardService
	logger      *zap.Logger
}

// NewLeaderboardHandler creates a leaderboard handler.
func NewLeaderboardHandler(leaderboard *usecase.LeaderboardService, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, logger: logger}
}

// Standings handles GET /api/leaderboard. Admin sessions see standings even
// while the public toggle is off.
func (h *LeaderboardHandler) Standings(c echo.Context) error {
	entries, err := h.leaderboard.Standings(c.Request().Context(), auth.IsAdmin(c))
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"leaderboard": entries})
}
