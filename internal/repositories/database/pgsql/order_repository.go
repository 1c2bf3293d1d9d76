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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const orderColumns = `order_id, tenant_id, order_number, customer_name, status, total_amount, created_at, created_by, last_updated_at, last_updated_by`
const orderLineColumns = `order_line_id, order_id, stock_item_id, quantity, unit_price`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.TenantID,
		&m.OrderNumber,
		&m.CustomerName,
		&m.Status,
		&m.TotalAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOrder inserts an order and its lines as one unit.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOrder(order)
	orderQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, orderQuery,
		m.OrderID,
		m.TenantID,
		m.OrderNumber,
		m.CustomerName,
		m.Status,
		m.TotalAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: order %s", apperrors.ErrDuplicate, m.OrderID)
		}
		return apperrors.NewAppError(500, "failed to insert order "+m.OrderID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO order_lines (` + orderLineColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range order.Lines {
		ml := mapping.ToModelOrderLine(line)
		batch.Queue(lineQuery, ml.OrderLineID, ml.OrderID, ml.StockItemID, ml.Quantity, ml.UnitPrice)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert order lines for order "+m.OrderID, err)
	}

	return r.Commit(ctx, tx)
}

// FindOrderByID retrieves an order with its lines, scoped by tenant.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, tenantID string, orderID string) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND order_id = $2;
	`
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, tenantID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, apperrors.NewAppError(500, "failed to query order "+orderID, err)
	}

	lines, err := r.findOrderLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order := mapping.ToDomainOrder(m)
	order.Lines = lines
	return &order, nil
}

func (r *PgxOrderRepository) findOrderLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	query := `
		SELECT ` + orderLineColumns + `
		FROM order_lines
		WHERE order_id = $1
		ORDER BY order_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query order lines for order "+orderID, err)
	}
	defer rows.Close()

	var ms []models.OrderLine
	for rows.Next() {
		var m models.OrderLine
		if err := rows.Scan(&m.OrderLineID, &m.OrderID, &m.StockItemID, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order line row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order line rows", err)
	}

	return mapping.ToDomainOrderLineSlice(ms), nil
}

// ListOrders retrieves a paginated list of orders for the tenant, without
// lines.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1
		ORDER BY created_at DESC, order_id
		LIMIT $2 OFFSET $3;
	`
	return r.queryOrders(ctx, query, tenantID, limit, offset)
}

// ListProcessingOrders retrieves every order still awaiting settlement.
func (r *PgxOrderRepository) ListProcessingOrders(ctx context.Context, tenantID string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at DESC, order_id;
	`
	return r.queryOrders(ctx, query, tenantID, models.OrderStatus(domain.OrderProcessing))
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list orders", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order row", err)
		}
		orders = append(orders, mapping.ToDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order rows", err)
	}

	return orders, nil
}
