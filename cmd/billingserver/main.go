// Package main implements the entry point for the billing server, a gRPC
// service that provisions billing accounts for newly created patients.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/clinichub/clinic-api/internal/billing"
	"github.com/clinichub/clinic-api/internal/billingpb"
	"github.com/clinichub/clinic-api/internal/config"
	"github.com/clinichub/clinic-api/internal/platform/logger"
)

const stopTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("billing server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log = log.With("service", "billingserver")

	addr := fmt.Sprintf(":%d", cfg.Billing.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()
	billingpb.RegisterBillingServiceServer(
		grpcServer,
		billing.NewServer(billing.NewMemoryProvisioner(), log),
	)

	errCh := make(chan error, 1)
	go func() {
		log.Info("gRPC server listening", "addr", addr)
		errCh <- grpcServer.Serve(lis)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	// GracefulStop waits for in-flight RPCs; fall back to a hard stop if
	// draining takes longer than stopTimeout.
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(stopTimeout):
		grpcServer.Stop()
	}

	if err := <-errCh; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
