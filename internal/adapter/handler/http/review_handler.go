package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/usecase"
)

// ReviewHandler exposes judging score submission and retrieval.
type ReviewHandler struct {
	reviews *usecase.ReviewService
	logger  *zap.Logger
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(reviews *usecase.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

// Submit handles POST /api/admin/teams/:id/reviews. Re-submitting a round
// overwrites only that round.
func (h *ReviewHandler) Submit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	scores, err := h.reviews.SubmitRound(c.Request().Context(), id, input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"scores": scores})
}

// Scores handles GET /api/teams/:id/reviews.
func (h *ReviewHandler) Scores(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	scores, err := h.reviews.Scores(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"scores": scores})
}
