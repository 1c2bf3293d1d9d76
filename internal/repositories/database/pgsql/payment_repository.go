package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
	"github.com/settleline/bizledger/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{pool: pool}
}

const paymentColumns = `payment_id, gateway_ref, tenant_id, user_id, amount, currency, status, metadata, transaction_id, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.GatewayRef,
		&m.TenantID,
		&m.UserID,
		&m.Amount,
		&m.Currency,
		&m.Status,
		&m.Metadata,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment inserts a new payment record.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m, err := mapping.ToModelPayment(payment)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode payment metadata", err)
	}

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = r.pool.Exec(ctx, query,
		m.PaymentID,
		m.GatewayRef,
		m.TenantID,
		m.UserID,
		m.Amount,
		m.Currency,
		m.Status,
		m.Metadata,
		m.TransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payment with reference %s", apperrors.ErrDuplicate, m.GatewayRef)
		}
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

// FindPaymentByReference retrieves a payment by its globally unique gateway
// reference.
func (r *PgxPaymentRepository) FindPaymentByReference(ctx context.Context, gatewayRef string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE gateway_ref = $1;
	`
	m, err := scanPayment(r.pool.QueryRow(ctx, query, gatewayRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, gatewayRef)
		}
		return nil, apperrors.NewAppError(500, "failed to query payment by reference", err)
	}

	payment, err := mapping.ToDomainPayment(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode payment metadata", err)
	}
	return &payment, nil
}

// UpdatePaymentStatusIfUnsettled updates status and metadata only while the
// stored status is not yet SUCCESS. Returning false means the conditional
// update matched no row because the payment was already settled; the caller
// must re-read and treat the stored record as final.
func (r *PgxPaymentRepository) UpdatePaymentStatusIfUnsettled(ctx context.Context, gatewayRef string, status domain.PaymentStatus, metadata map[string]string, now time.Time) (bool, error) {
	metadataJSON := []byte("{}")
	if metadata != nil {
		encoded, err := json.Marshal(metadata)
		if err != nil {
			return false, apperrors.NewAppError(500, "failed to encode payment metadata", err)
		}
		metadataJSON = encoded
	}

	query := `
		UPDATE payments
		SET status = $2,
		    metadata = metadata || $3,
		    last_updated_at = $4
		WHERE gateway_ref = $1 AND status <> $5;
	`
	cmdTag, err := r.pool.Exec(ctx, query, gatewayRef, models.PaymentStatus(status), metadataJSON, now, models.PaymentStatus(domain.PaymentSuccess))
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to update payment "+gatewayRef, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Missing row is an error; settled row is the idempotent no-op.
		if _, err := r.FindPaymentByReference(ctx, gatewayRef); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
