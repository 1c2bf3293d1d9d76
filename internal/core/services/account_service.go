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
	"github.com/shopspring/decimal"
)

type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: repo}
}

func (s *AccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balance := decimal.Zero
	if req.Balance != nil {
		if req.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
		}
		balance = *req.Balance
	}

	now := time.Now()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		TenantID:      tenantID,
		Name:          req.Name,
		AccountType:   req.AccountType,
		AccountNumber: req.AccountNumber,
		Balance:       balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
