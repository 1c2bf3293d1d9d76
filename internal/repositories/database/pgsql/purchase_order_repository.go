package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
	"github.com/settleline/bizledger/internal/utils/mapping"
)

type PgxPurchaseOrderRepository struct {
	pool *pgxpool.Pool
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) *PgxPurchaseOrderRepository {
	return &PgxPurchaseOrderRepository{pool: pool}
}

const purchaseOrderColumns = `purchase_order_id, tenant_id, order_number, supplier_name, amount, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseOrder(row pgx.Row) (models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.PurchaseOrderID,
		&m.TenantID,
		&m.OrderNumber,
		&m.SupplierName,
		&m.Amount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePurchaseOrder inserts a new purchase order.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	m := mapping.ToModelPurchaseOrder(po)

	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PurchaseOrderID,
		m.TenantID,
		m.OrderNumber,
		m.SupplierName,
		m.Amount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: purchase order %s", apperrors.ErrDuplicate, m.PurchaseOrderID)
		}
		return apperrors.NewAppError(500, "failed to insert purchase order "+m.PurchaseOrderID, err)
	}
	return nil
}

// FindPurchaseOrderByID retrieves a purchase order scoped by tenant.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, tenantID string, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE tenant_id = $1 AND purchase_order_id = $2;
	`
	m, err := scanPurchaseOrder(r.pool.QueryRow(ctx, query, tenantID, purchaseOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
		}
		return nil, apperrors.NewAppError(500, "failed to query purchase order "+purchaseOrderID, err)
	}
	po := mapping.ToDomainPurchaseOrder(m)
	return &po, nil
}

// ListPurchaseOrders retrieves a paginated list of purchase orders for the tenant.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE tenant_id = $1
		ORDER BY created_at DESC, purchase_order_id
		LIMIT $2 OFFSET $3;
	`
	return r.queryPurchaseOrders(ctx, query, tenantID, limit, offset)
}

// ListPendingPurchaseOrders retrieves every purchase order awaiting settlement.
func (r *PgxPurchaseOrderRepository) ListPendingPurchaseOrders(ctx context.Context, tenantID string) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at DESC, purchase_order_id;
	`
	return r.queryPurchaseOrders(ctx, query, tenantID, models.PurchaseOrderStatus(domain.PurchaseOrderPending))
}

func (r *PgxPurchaseOrderRepository) queryPurchaseOrders(ctx context.Context, query string, args ...any) ([]domain.PurchaseOrder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list purchase orders", err)
	}
	defer rows.Close()

	var pos []domain.PurchaseOrder
	for rows.Next() {
		m, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order row", err)
		}
		pos = append(pos, mapping.ToDomainPurchaseOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase order rows", err)
	}

	return pos, nil
}
