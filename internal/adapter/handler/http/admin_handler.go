package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hackathon-server/internal/usecase"
)

// AdminHandler exposes the approval workflow, toggles and exports.
type AdminHandler struct {
	approval *usecase.ApprovalService
	settings *usecase.SettingsService
	export   *usecase.ExportService
	logger   *zap.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(
	approval *usecase.ApprovalService,
	settings *usecase.SettingsService,
	export *usecase.ExportService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{approval: approval, settings: settings, export: export, logger: logger}
}

// Approve handles POST /api/admin/teams/:id/approve. Email failure degrades
// the response to a warning rather than failing the approval.
func (h *AdminHandler) Approve(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	team, warning, err := h.approval.Approve(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}

	fields := envelope{"team": team}
	if warning != "" {
		fields["warning"] = warning
	}
	return ok(c, http.StatusOK, fields)
}

// Reject handles POST /api/admin/teams/:id/reject. The team and every
// dependent row are permanently deleted.
func (h *AdminHandler) Reject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.approval.Reject(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"message": "team rejected and removed"})
}

// GetSettings handles GET /api/admin/settings.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	all, err := h.settings.All(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"settings": all})
}

// SetSetting handles PUT /api/admin/settings/:key.
func (h *AdminHandler) SetSetting(c echo.Context) error {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "malformed request body")
	}
	key := c.Param("key")
	if err := h.settings.Set(c.Request().Context(), key, body.Enabled); err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"key": key, "enabled": body.Enabled})
}

// ExportWorkbook handles GET /api/admin/export, streaming an xlsx workbook
// of every team, member and score.
func (h *AdminHandler) ExportWorkbook(c echo.Context) error {
	buf, err := h.export.TeamsWorkbook(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}

	filename := fmt.Sprintf("teams-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportSnapshot handles GET /api/admin/database, returning every table as
// JSON for backup.
func (h *AdminHandler) ExportSnapshot(c echo.Context) error {
	snapshot, err := h.export.Snapshot(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return ok(c, http.StatusOK, envelope{"tables": snapshot})
}
