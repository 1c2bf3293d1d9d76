package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
	"github.com/settleline/bizledger/internal/utils/mapping"
	"github.com/settleline/bizledger/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

const transactionColumns = `transaction_id, tenant_id, description, amount, kind, category, effective_date, account_id, status, gateway_ref, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TenantID,
		&m.Description,
		&m.Amount,
		&m.Kind,
		&m.Category,
		&m.EffectiveDate,
		&m.AccountID,
		&m.Status,
		&m.GatewayRef,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.TenantID,
		m.Description,
		m.Amount,
		m.Kind,
		m.Category,
		m.EffectiveDate,
		m.AccountID,
		m.Status,
		m.GatewayRef,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction scoped by tenant.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, tenantID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE tenant_id = $1 AND transaction_id = $2;
	`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, tenantID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to query transaction "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionByGatewayRef retrieves the transaction funded by the given
// gateway reference.
func (r *PgxTransactionRepository) FindTransactionByGatewayRef(ctx context.Context, tenantID string, gatewayRef string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE tenant_id = $1 AND gateway_ref = $2;
	`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, tenantID, gatewayRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction for reference %s", apperrors.ErrNotFound, gatewayRef)
		}
		return nil, apperrors.NewAppError(500, "failed to query transaction by gateway ref", err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves a token-paginated list ordered by effective date
// then creation time, newest first. The returned token resumes after the last
// row of this page.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, tenantID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE tenant_id = $1
	`
	args := []any{tenantID}

	if status != nil {
		args = append(args, models.TransactionStatus(*status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		effectiveDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, effectiveDate, createdAt)
		query += fmt.Sprintf(` AND (effective_date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += `
		ORDER BY effective_date DESC, created_at DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.EffectiveDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(ms), token, nil
}

// ListPendingTransactions retrieves every pending transaction for the tenant.
func (r *PgxTransactionRepository) ListPendingTransactions(ctx context.Context, tenantID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE tenant_id = $1 AND status = $2
		ORDER BY effective_date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, tenantID, models.TransactionStatus(domain.TransactionPending))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list pending transactions", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// AttachGatewayRef records the gateway reference funding a still-pending
// transaction. Settled transactions are left untouched so a late attach
// cannot relabel history.
func (r *PgxTransactionRepository) AttachGatewayRef(ctx context.Context, tenantID string, transactionID string, gatewayRef string) error {
	query := `
		UPDATE transactions
		SET gateway_ref = $3
		WHERE tenant_id = $1 AND transaction_id = $2 AND status = $4;
	`
	cmdTag, err := r.pool.Exec(ctx, query, tenantID, transactionID, gatewayRef, models.TransactionStatus(domain.TransactionPending))
	if err != nil {
		return apperrors.NewAppError(500, "failed to attach gateway ref to transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either missing or already settled; distinguish for the caller.
		if _, err := r.FindTransactionByID(ctx, tenantID, transactionID); err != nil {
			return err
		}
		return fmt.Errorf("%w: transaction %s", apperrors.ErrConflict, transactionID)
	}
	return nil
}
