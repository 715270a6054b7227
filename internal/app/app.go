// Package app assembles the web application: configuration, logging,
// services, routes and the HTTP server lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"busireport/internal/config"
	apierrors "busireport/internal/errors"
	"busireport/internal/infrastructure"
	"busireport/internal/middleware"
	"busireport/internal/services"
	handlers "busireport/internal/transport/http"
)

// Application is the assembled web application.
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	Router        *chi.Mux
	Server        *http.Server
	ReportService *services.ReportService
	HealthService *services.HealthService
}

// New creates the application with all dependencies wired.
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		ReportService: services.NewReportServiceWithLogger(cfg, logger),
		HealthService: services.NewHealthService(cfg, logger),
	}
	app.Router = app.buildRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (a *Application) buildRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(a.Logger))
	r.Use(middleware.Recoverer(a.Logger))

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	healthHandler := handlers.NewHealthHandler(a.HealthService)
	reportHandler := handlers.NewReportHandler(a.ReportService, a.Config.Upload, a.Logger, errorHandler)

	r.Get("/healthz", healthHandler.Healthz)
	r.Route("/api", func(r chi.Router) {
		r.Mount("/status", healthHandler.Routes())

		r.Group(func(r chi.Router) {
			if rl := a.Config.Server.RateLimit; rl.Enabled {
				limiter := middleware.NewRateLimiter(rl.RPS, rl.Burst, a.Logger)
				r.Use(limiter.Handler)
			}
			r.Mount("/reports", reportHandler.Routes())
		})
	})

	return r
}

// Run starts the HTTP server and blocks until the context is cancelled
// or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Info("server starting",
		slog.Int("port", a.Config.Server.Port),
		slog.String("assets_dir", a.Config.Paths.AssetsDir))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()
		a.Logger.Info("server shutting down")
		return a.Server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.Logger.Info("server stopped", slog.Duration("shutdown_timeout", a.Config.Server.ShutdownTimeout))
	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}
