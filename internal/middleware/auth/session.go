// Package auth guards admin and team routes with cookie sessions.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie the session rides in.
	SessionName = "hackathon_session"

	keyIsAdmin = "is_admin"
	keyTeamID  = "team_id"

	// AdminTokenHeader is the trusted-header alternative to an admin
	// session, used by operational scripts.
	AdminTokenHeader = "X-Admin-Token"
)

// MarkAdmin flags the current session as an operator session.
func MarkAdmin(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[keyIsAdmin] = true
	return sess.Save(c.Request(), c.Response())
}

// MarkTeam binds the current session to an approved team.
func MarkTeam(c echo.Context, teamID uint) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[keyTeamID] = teamID
	return sess.Save(c.Request(), c.Response())
}

// Clear drops the session.
func Clear(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{MaxAge: -1, Path: "/", HttpOnly: true}
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(c.Request(), c.Response())
}

// IsAdmin reports whether the session carries the operator flag.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return false
	}
	flag, _ := sess.Values[keyIsAdmin].(bool)
	return flag
}

// TeamID returns the team bound to the session, or 0.
func TeamID(c echo.Context) uint {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return 0
	}
	id, _ := sess.Values[keyTeamID].(uint)
	return id
}

// RequireAdmin allows operator sessions through, or requests bearing the
// configured admin token header. Everything else gets 403.
func RequireAdmin(adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IsAdmin(c) {
				return next(c)
			}
			header := c.Request().Header.Get(AdminTokenHeader)
			if adminToken != "" && header != "" &&
				subtle.ConstantTimeCompare([]byte(header), []byte(adminToken)) == 1 {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
	}
}

// RequireTeam allows sessions bound to a team through. Admin sessions pass
// as well so operators can drive the team portal.
func RequireTeam() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if TeamID(c) != 0 || IsAdmin(c) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "team login required")
		}
	}
}

// RequireSameTeam restricts a route to the team named by the path parameter.
// A session bound to another team gets 403; admin sessions pass.
func RequireSameTeam(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IsAdmin(c) {
				return next(c)
			}
			id, err := strconv.ParseUint(c.Param(param), 10, 32)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
			}
			if TeamID(c) != uint(id) {
				return echo.NewHTTPError(http.StatusForbidden, "not your team")
			}
			return next(c)
		}
	}
}
