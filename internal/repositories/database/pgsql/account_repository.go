package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
	"github.com/settleline/bizledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

const accountColumns = `account_id, tenant_id, name, account_type, account_number, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Name,
		&m.AccountType,
		&m.AccountNumber,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.TenantID,
		m.Name,
		m.AccountType,
		m.AccountNumber,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, m.AccountID)
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account scoped by tenant.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE tenant_id = $1 AND account_id = $2;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, apperrors.NewAppError(500, "failed to query account "+accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves a paginated list of accounts for the tenant.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE tenant_id = $1
		ORDER BY created_at DESC, account_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(ms), nil
}

// findAccountForUpdateTx locks an account row inside a settlement transaction.
func (r *PgxAccountRepository) findAccountForUpdateTx(ctx context.Context, tx pgx.Tx, tenantID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE tenant_id = $1 AND account_id = $2
		FOR UPDATE;
	`
	m, err := scanAccount(tx.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock account "+accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// incrementAccountBalanceTx applies a relative balance change inside a
// settlement transaction. The caller holds the row lock.
func (r *PgxAccountRepository) incrementAccountBalanceTx(ctx context.Context, tx pgx.Tx, tenantID string, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tenant_id = $1 AND account_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, tenantID, accountID, delta, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance for account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// findOrCreateRevenueAccountTx returns the tenant's sales revenue account,
// locked for update, creating it on first use.
func (r *PgxAccountRepository) findOrCreateRevenueAccountTx(ctx context.Context, tx pgx.Tx, tenantID string, userID string, now time.Time) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE tenant_id = $1 AND name = $2 AND account_type = $3
		FOR UPDATE;
	`
	m, err := scanAccount(tx.QueryRow(ctx, query, tenantID, domain.SalesRevenueAccountName, models.AccountType(domain.AccountRevenue)))
	if err == nil {
		account := mapping.ToDomainAccount(m)
		return &account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to query revenue account", err)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    tenantID,
		Name:        domain.SalesRevenueAccountName,
		AccountType: domain.AccountRevenue,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	mNew := mapping.ToModelAccount(account)
	insert := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, insert,
		mNew.AccountID, mNew.TenantID, mNew.Name, mNew.AccountType, mNew.AccountNumber,
		mNew.Balance, mNew.CreatedAt, mNew.CreatedBy, mNew.LastUpdatedAt, mNew.LastUpdatedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to create revenue account", err)
	}
	return &account, nil
}
