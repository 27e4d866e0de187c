// Package main implements the entry point for the patient server, which
// exposes patient CRUD behind bearer-token authentication and provisions
// billing accounts over gRPC when patients are created.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinichub/clinic-api/internal/api"
	"github.com/clinichub/clinic-api/internal/api/middleware"
	"github.com/clinichub/clinic-api/internal/billing"
	"github.com/clinichub/clinic-api/internal/config"
	"github.com/clinichub/clinic-api/internal/platform/logger"
	"github.com/clinichub/clinic-api/internal/platform/postgres"
	"github.com/clinichub/clinic-api/internal/service"
	"github.com/clinichub/clinic-api/internal/service/auth"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("patient server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log = log.With("service", "patientserver")

	if cfg.Database.URL == "" {
		return errors.New("database.url is required (CLINIC_DATABASE_URL)")
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (CLINIC_AUTH_JWT_SECRET)")
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(db, log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	billingClient, err := billing.NewGRPCClient(cfg.Billing, log)
	if err != nil {
		return fmt.Errorf("failed to create billing client: %w", err)
	}
	defer func() {
		if err := billingClient.Close(); err != nil {
			log.Error("failed to close billing client", "error", err)
		}
	}()

	patientStore := postgres.NewPatientStore(db, log)
	patientService := service.NewPatientService(patientStore, billingClient, log)
	patientHandler := api.NewPatientHandler(patientService, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/patients", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", patientHandler.List)
		r.Post("/", patientHandler.Create)
		r.Put("/{id}", patientHandler.Update)
		r.Delete("/{id}", patientHandler.Delete)
	})

	return serveHTTP(cfg.Server.Port, r, log)
}

// serveHTTP starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests within shutdownTimeout.
func serveHTTP(port int, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return <-errCh
}
