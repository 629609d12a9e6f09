package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	ledgerv1 "github.com/simaogato/ledger-backend/internal/adapter/grpc/ledger/v1"
	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/usecase/accounts"
)

// Server implements the AccountsService gRPC server
type Server struct {
	ledgerv1.UnimplementedAccountsServiceServer

	AccountsService *accounts.AccountsService
}

var _ ledgerv1.AccountsServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(accountsService *accounts.AccountsService) *Server {
	return &Server{
		AccountsService: accountsService,
	}
}

// NewGRPCServer builds a grpc.Server with the accounts service, health
// checking and reflection registered
func NewGRPCServer(srv *Server, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
		),
	)

	ledgerv1.RegisterAccountsServiceServer(s, srv)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ledgerv1.AccountsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	reflection.Register(s)

	return s
}

// CreateAccount handles the CreateAccount RPC
func (s *Server) CreateAccount(ctx context.Context, req *ledgerv1.CreateAccountRequest) (*ledgerv1.CreateAccountResponse, error) {
	// An omitted balance opens the account at zero
	balance := decimal.Zero
	if req.Balance != "" {
		parsed, err := decimal.NewFromString(req.Balance)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid balance format: %v", err)
		}
		balance = parsed
	}

	account := domain.NewAccount(req.AccountId, balance)
	if err := s.AccountsService.CreateAccount(ctx, account); err != nil {
		return nil, mapError(err)
	}

	return &ledgerv1.CreateAccountResponse{
		Account: domainAccountToProto(account),
	}, nil
}

// GetAccount handles the GetAccount RPC
func (s *Server) GetAccount(ctx context.Context, req *ledgerv1.GetAccountRequest) (*ledgerv1.GetAccountResponse, error) {
	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	account, err := s.AccountsService.GetAccount(ctx, req.AccountId)
	if err != nil {
		return nil, mapError(err)
	}

	return &ledgerv1.GetAccountResponse{
		Account: domainAccountToProto(account),
	}, nil
}

// TransferAmount handles the TransferAmount RPC
func (s *Server) TransferAmount(ctx context.Context, req *ledgerv1.TransferAmountRequest) (*ledgerv1.TransferAmountResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	transfer, err := s.AccountsService.TransferAmount(ctx, req.AccountFromId, req.AccountToId, amount)
	if err != nil {
		return nil, mapError(err)
	}

	return &ledgerv1.TransferAmountResponse{
		TransferId: transfer.ID.String(),
		AccountFrom: &ledgerv1.Account{
			AccountId: transfer.FromAccountID,
			Balance:   transfer.FromBalance.String(),
		},
		AccountTo: &ledgerv1.Account{
			AccountId: transfer.ToAccountID,
			Balance:   transfer.ToBalance.String(),
		},
		Amount:    transfer.Amount.String(),
		CreatedAt: timestamppb.New(transfer.Date),
	}, nil
}

func domainAccountToProto(account *domain.Account) *ledgerv1.Account {
	return &ledgerv1.Account{
		AccountId: account.ID,
		Balance:   account.Balance.String(),
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyAccountID),
		errors.Is(err, domain.ErrNegativeBalance):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrDuplicateAccountID):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	return status.Errorf(codes.Internal, "%s", err.Error())
}
