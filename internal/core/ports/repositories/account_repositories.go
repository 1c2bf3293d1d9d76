package repositories

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
)

// AccountReader defines read operations for account data. Every read is
// scoped by tenant id; an account belonging to another tenant is reported as
// not found.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a given tenant.
	ListAccounts(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data. There is no
// balance setter here on purpose: balances move only inside settlement
// transactions, via relative increments.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
