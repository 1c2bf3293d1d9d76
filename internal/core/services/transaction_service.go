package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

type TransactionService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) *TransactionService {
	return &TransactionService{txnRepo: txnRepo, accountRepo: accountRepo}
}

// CreateTransaction records a new PENDING transaction. The referenced
// account, when given, must exist in the tenant; its balance is not touched
// here.
func (s *TransactionService) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, *req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, *req.AccountID)
			}
			return nil, err
		}
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		TenantID:      tenantID,
		Description:   req.Description,
		Amount:        req.Amount,
		Kind:          req.Kind,
		Category:      req.Category,
		EffectiveDate: req.EffectiveDate,
		AccountID:     req.AccountID,
		Status:        domain.TransactionPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, tenantID string, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.txnRepo.FindTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, tenantID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.Status != nil {
		switch *params.Status {
		case domain.TransactionPending, domain.TransactionPaid, domain.TransactionRejected:
		default:
			return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *params.Status)
		}
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, tenantID, params.Status, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}
