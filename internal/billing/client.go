package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/clinichub/clinic-api/internal/billingpb"
	"github.com/clinichub/clinic-api/internal/config"
	"github.com/clinichub/clinic-api/internal/platform/logger"
	"github.com/clinichub/clinic-api/internal/platform/metrics"
)

// Account is the acknowledgement returned by the billing service.
// The patient service never persists or reconciles it.
type Account struct {
	AccountID string
	Status    string
}

// Client is the patient service's view of the billing provisioning endpoint.
type Client interface {
	// CreateBillingAccount issues a blocking provisioning request for the
	// given patient. Returns ErrUnavailable (wrapped) on any transport or
	// remote failure.
	CreateBillingAccount(ctx context.Context, patientID, name, email string) (*Account, error)
}

// GRPCClient implements Client over a single long-lived plaintext channel
// to a fixed billing address. No retry, backoff, or circuit breaker is
// applied; the only bound on a call is the configured per-call deadline.
type GRPCClient struct {
	conn    *grpc.ClientConn
	stub    billingpb.BillingServiceClient
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure GRPCClient implements Client
var _ Client = (*GRPCClient)(nil)

// NewGRPCClient dials the billing endpoint and returns a client sharing one
// channel across all calls. The connection is established lazily by gRPC;
// a dead endpoint surfaces per call, not here.
func NewGRPCClient(cfg config.BillingConfig, log *slog.Logger) (*GRPCClient, error) {
	if log == nil {
		log = slog.Default()
	}

	target := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	log.Info("connecting to billing service", "target", target)

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create billing channel: %w", err)
	}

	return &GRPCClient{
		conn:    conn,
		stub:    billingpb.NewBillingServiceClient(conn),
		timeout: cfg.Timeout(),
		logger:  log.With("component", "billing_client"),
	}, nil
}

// CreateBillingAccount implements Client.CreateBillingAccount.
// The calling goroutine blocks until the remote responds, the channel
// surfaces a transport error, or the deadline expires.
func (c *GRPCClient) CreateBillingAccount(ctx context.Context, patientID, name, email string) (*Account, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.stub.CreateBillingAccount(ctx, &billingpb.BillingRequest{
		PatientId: patientID,
		Name:      name,
		Email:     email,
	})
	metrics.BillingRPCDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.BillingRPCTotal.WithLabelValues("error").Inc()
		log.Error("billing RPC failed",
			"error", err,
			"patient_id", patientID)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.GetAccountId() == "" {
		// A malformed acknowledgement is indistinguishable from a broken
		// remote as far as the caller is concerned.
		metrics.BillingRPCTotal.WithLabelValues("malformed").Inc()
		log.Error("billing RPC returned empty account ID",
			"patient_id", patientID)
		return nil, fmt.Errorf("%w: empty account ID in response", ErrUnavailable)
	}

	metrics.BillingRPCTotal.WithLabelValues("ok").Inc()
	log.Info("billing account provisioned",
		"patient_id", patientID,
		"account_id", resp.GetAccountId(),
		"status", resp.GetStatus())

	return &Account{
		AccountID: resp.GetAccountId(),
		Status:    resp.GetStatus(),
	}, nil
}

// Close tears down the underlying channel.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
