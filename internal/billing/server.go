package billing

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clinichub/clinic-api/internal/billingpb"
)

// Server implements the BillingService gRPC API.
type Server struct {
	billingpb.UnimplementedBillingServiceServer

	provisioner Provisioner
	logger      *slog.Logger
}

// NewServer creates a billing gRPC server backed by the given provisioner.
func NewServer(provisioner Provisioner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		provisioner: provisioner,
		logger:      logger.With("component", "billing_server"),
	}
}

// CreateBillingAccount handles the unary provisioning call.
func (s *Server) CreateBillingAccount(ctx context.Context, req *billingpb.BillingRequest) (*billingpb.BillingResponse, error) {
	s.logger.Info("billing account requested",
		"patient_id", req.GetPatientId(),
		"email", req.GetEmail())

	if req.GetPatientId() == "" {
		return nil, status.Error(codes.InvalidArgument, "patient_id is required")
	}
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	account, err := s.provisioner.Provision(ctx, req.GetPatientId(), req.GetName(), req.GetEmail())
	if err != nil {
		s.logger.Error("failed to provision billing account",
			"error", err,
			"patient_id", req.GetPatientId())
		return nil, status.Error(codes.Internal, "failed to provision billing account")
	}

	s.logger.Info("billing account provisioned",
		"patient_id", req.GetPatientId(),
		"account_id", account.AccountID,
		"status", account.Status)

	return &billingpb.BillingResponse{
		AccountId: account.AccountID,
		Status:    account.Status,
	}, nil
}
