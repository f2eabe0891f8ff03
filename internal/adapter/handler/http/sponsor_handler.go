package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/usecase"
)

// SponsorHandler exposes the sponsor listing and its admin CRUD.
type SponsorHandler struct {
	sponsors *usecase.SponsorService
	uploads  Uploader
	logger   *zap.Logger
}

// NewSponsorHandler creates a sponsor handler.
func NewSponsorHandler(sponsors *usecase.SponsorService, uploads Uploader, logger *zap.Logger) *SponsorHandler {
	return &SponsorHandler{sponsors: sponsors, uploads: uploads, logger: logger}
}

// List handles GET /api/sponsors.
func (h *SponsorHandler) List(c echo.Context) error {
	sponsors, err := h.sponsors.List(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"sponsors": sponsors})
}

// Create handles POST /api/admin/sponsors, JSON or multipart with a "logo"
// file field.
func (h *SponsorHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return httpError(c, err)
	}
	sponsor, err := h.sponsors.Create(c.Request().Context(), input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusCreated, envelope{"sponsor": sponsor})
}

// Update handles PUT /api/admin/sponsors/:id.
func (h *SponsorHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	input, err := h.bindInput(c)
	if err != nil {
		return httpError(c, err)
	}
	sponsor, err := h.sponsors.Update(c.Request().Context(), id, input)
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"sponsor": sponsor})
}

// Delete handles DELETE /api/admin/sponsors/:id.
func (h *SponsorHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.sponsors.Delete(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "sponsor deleted"})
}

func (h *SponsorHandler) bindInput(c echo.Context) (usecase.SponsorInput, error) {
	var input usecase.SponsorInput

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		input.Name = c.FormValue("name")
		input.WebsiteURL = c.FormValue("website_url")
		if order := c.FormValue("display_order"); order != "" {
			parsed, err := strconv.Atoi(order)
			if err != nil {
				return input, echo.NewHTTPError(http.StatusBadRequest, "invalid display_order")
			}
			input.DisplayOrder = parsed
		}

		stored, err := h.uploads.SaveMultipart(c, "logo")
		if err != nil {
			return input, err
		}
		input.LogoPath = stored
		return input, nil
	}

	if err := c.Bind(&input); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	return input, nil
}
