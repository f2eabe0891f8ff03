// Package http assembles the echo server and its routes.
package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handler "hackathon-server/internal/adapter/handler/http"
	"hackathon-server/internal/config"
	"hackathon-server/internal/infrastructure/database"
	"hackathon-server/internal/infrastructure/mail"
	"hackathon-server/internal/infrastructure/storage"
	"hackathon-server/internal/middleware/auth"
	"hackathon-server/internal/usecase"
)

// Server is the HTTP front of the application.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
	store  *storage.LocalStore
}

// NewServer wires repositories, services and routes.
func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) (*Server, error) {
	store, err := storage.NewLocalStore(cfg.Service.UploadDir, logger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodPut, nethttp.MethodDelete},
		AllowCredentials: true,
	}))
	if cfg.Server.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	}

	cookieStore := sessions.NewCookieStore([]byte(cfg.Service.SessionSecret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Service.SessionMaxAgeMin * 60,
		HttpOnly: true,
		SameSite: nethttp.SameSiteLaxMode,
	}
	e.Use(session.Middleware(cookieStore))

	s := &Server{cfg: cfg, logger: logger, echo: e, repos: repos, store: store}
	s.setupRoutes()

	authService := usecase.NewAuthService(repos.Admin, repos.Team, repos.Settings, cfg.Service, logger)
	if err := authService.EnsureAdmin(context.Background()); err != nil {
		logger.Warn("failed to seed operator account", zap.Error(err))
	}
	return s, nil
}

func (s *Server) setupRoutes() {
	var mailer usecase.Mailer
	if s.cfg.Email.SMTPHost != "" {
		mailer = mail.NewSender(s.cfg.Email, s.logger)
	}

	registrationService := usecase.NewRegistrationService(s.repos.Team, s.repos.Settings, s.logger)
	approvalService := usecase.NewApprovalService(s.repos.Team, mailer, s.store, s.logger)
	teamService := usecase.NewTeamService(s.repos.Team, s.repos.Settings, s.logger)
	statementService := usecase.NewStatementService(s.repos.ProblemStatement, s.repos.Team, s.logger)
	reviewService := usecase.NewReviewService(s.repos.Review, s.repos.Team, s.logger)
	leaderboardService := usecase.NewLeaderboardService(s.repos.Team, s.repos.Review, s.repos.Settings, s.logger)
	authService := usecase.NewAuthService(s.repos.Admin, s.repos.Team, s.repos.Settings, s.cfg.Service, s.logger)
	settingsService := usecase.NewSettingsService(s.repos.Settings, s.logger)
	sponsorService := usecase.NewSponsorService(s.repos.Sponsor, s.store, s.logger)
	exportService := usecase.NewExportService(s.repos.Team, s.repos.Review, s.repos.Export, s.logger)
	ticketService := usecase.NewTicketService(s.repos.Team, s.cfg.Service.AssetsDir, s.logger)

	saver := handler.NewMultipartSaver(s.store)
	registrationHandler := handler.NewRegistrationHandler(registrationService, saver, s.logger)
	teamHandler := handler.NewTeamHandler(teamService, ticketService, s.logger)
	adminHandler := handler.NewAdminHandler(approvalService, settingsService, exportService, s.logger)
	statementHandler := handler.NewStatementHandler(statementService, s.logger)
	reviewHandler := handler.NewReviewHandler(reviewService, s.logger)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.logger)
	sponsorHandler := handler.NewSponsorHandler(sponsorService, saver, s.logger)
	uploadHandler := handler.NewUploadHandler(s.store, s.logger)

	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{
			"status":  "ok",
			"service": s.cfg.Service.Name,
			"version": s.cfg.Service.Version,
		})
	})

	api := s.echo.Group("/api")

	// Public surface.
	api.POST("/register", registrationHandler.Register)
	api.GET("/teams", teamHandler.ListPublic)
	api.GET("/teams/:id", teamHandler.Get)
	api.GET("/teams/:id/reviews", reviewHandler.Scores)
	api.GET("/problem-statements", statementHandler.List)
	api.GET("/problem-statements/:id", statementHandler.Get)
	api.GET("/problem-statements/:id/teams", statementHandler.Teams)
	api.GET("/leaderboard", leaderboardHandler.Standings)
	api.GET("/sponsors", sponsorHandler.List)
	api.POST("/admin/login", authHandler.AdminLogin)
	api.POST("/teams/login", authHandler.TeamLogin)
	api.POST("/logout", authHandler.Logout)
	api.GET("/session", authHandler.Session)

	s.echo.GET("/uploads/:name", uploadHandler.Serve)

	// Team portal, session-bound.
	team := api.Group("/teams", auth.RequireTeam())
	team.POST("/select-statement", statementHandler.Select)
	team.PUT("/:id/repo", teamHandler.SetRepoURL, auth.RequireSameTeam("id"))
	team.GET("/:id/ticket", teamHandler.Ticket, auth.RequireSameTeam("id"))

	// Admin console.
	admin := api.Group("/admin", auth.RequireAdmin(s.cfg.Service.AdminToken))
	admin.GET("/teams/pending", teamHandler.ListPending)
	admin.GET("/teams/approved", teamHandler.ListApproved)
	admin.POST("/teams/:id/approve", adminHandler.Approve)
	admin.POST("/teams/:id/reject", adminHandler.Reject)
	admin.POST("/teams/:id/members", teamHandler.AddMember)
	admin.DELETE("/teams/:id/members/:memberId", teamHandler.RemoveMember)
	admin.POST("/teams/:id/reviews", reviewHandler.Submit)
	admin.GET("/statistics", teamHandler.Statistics)
	admin.GET("/settings", adminHandler.GetSettings)
	admin.PUT("/settings/:key", adminHandler.SetSetting)
	admin.POST("/problem-statements", statementHandler.Create)
	admin.PUT("/problem-statements/:id", statementHandler.Update)
	admin.DELETE("/problem-statements/:id", statementHandler.Delete)
	admin.POST("/sponsors", sponsorHandler.Create)
	admin.PUT("/sponsors/:id", sponsorHandler.Update)
	admin.DELETE("/sponsors/:id", sponsorHandler.Delete)
	admin.GET("/export", adminHandler.ExportWorkbook)
	admin.GET("/database", adminHandler.ExportSnapshot)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info("http server starting", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && err != nethttp.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
