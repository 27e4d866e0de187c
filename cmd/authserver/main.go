// Package main implements the entry point for the auth server, which
// issues JWT bearer tokens on login and verifies them on demand for the
// rest of the platform.
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

	"github.com/clinichub/clinic-api/internal/api"
	"github.com/clinichub/clinic-api/internal/api/middleware"
	"github.com/clinichub/clinic-api/internal/config"
	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/platform/logger"
	"github.com/clinichub/clinic-api/internal/platform/postgres"
	"github.com/clinichub/clinic-api/internal/service/auth"
	"github.com/clinichub/clinic-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("auth server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log = log.With("service", "authserver")

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

	userStore := postgres.NewUserStore(db, log)

	if err := seedCredential(context.Background(), db, cfg.Auth, log); err != nil {
		return fmt.Errorf("failed to seed login credential: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}

	authenticator := auth.NewAuthenticator(userStore, jwtService, auth.NewBcryptVerifier(), log)
	authHandler := api.NewAuthHandler(authenticator, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Post("/login", authHandler.Login)
	r.Get("/validate", authHandler.Validate)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return serveHTTP(cfg.Server.Port, r, log)
}

// seedCredential ensures the configured login credential exists. It is a
// no-op unless both seed fields are set, and it tolerates the credential
// already existing so restarts stay idempotent.
func seedCredential(ctx context.Context, db *sql.DB, cfg config.AuthConfig, log *slog.Logger) error {
	if cfg.SeedEmail == "" || cfg.SeedPassword == "" {
		return nil
	}

	user, err := domain.NewUser(cfg.SeedEmail, cfg.SeedPassword)
	if err != nil {
		return err
	}

	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if err := postgres.NewUserStore(tx, log).Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				log.Info("seed credential already present", "email", cfg.SeedEmail)
				return nil
			}
			return err
		}

		log.Info("seed credential created", "email", cfg.SeedEmail)
		return nil
	})
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
