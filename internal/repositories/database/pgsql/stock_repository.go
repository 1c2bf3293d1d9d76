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

type PgxStockRepository struct {
	pool *pgxpool.Pool
}

func newPgxStockRepository(pool *pgxpool.Pool) *PgxStockRepository {
	return &PgxStockRepository{pool: pool}
}

const stockColumns = `stock_item_id, tenant_id, sku, name, quantity, reorder_level, unit_price, created_at, created_by, last_updated_at, last_updated_by`

func scanStockItem(row pgx.Row) (models.StockItem, error) {
	var m models.StockItem
	err := row.Scan(
		&m.StockItemID,
		&m.TenantID,
		&m.SKU,
		&m.Name,
		&m.Quantity,
		&m.ReorderLevel,
		&m.UnitPrice,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveStockItem inserts a new stock item.
func (r *PgxStockRepository) SaveStockItem(ctx context.Context, item domain.StockItem) error {
	m := mapping.ToModelStockItem(item)

	query := `
		INSERT INTO stock_items (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.StockItemID,
		m.TenantID,
		m.SKU,
		m.Name,
		m.Quantity,
		m.ReorderLevel,
		m.UnitPrice,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: stock item with SKU %s", apperrors.ErrDuplicate, m.SKU)
		}
		return apperrors.NewAppError(500, "failed to insert stock item "+m.StockItemID, err)
	}
	return nil
}

// FindStockItemByID retrieves a stock item scoped by tenant.
func (r *PgxStockRepository) FindStockItemByID(ctx context.Context, tenantID string, stockItemID string) (*domain.StockItem, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_items
		WHERE tenant_id = $1 AND stock_item_id = $2;
	`
	m, err := scanStockItem(r.pool.QueryRow(ctx, query, tenantID, stockItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: stock item %s", apperrors.ErrNotFound, stockItemID)
		}
		return nil, apperrors.NewAppError(500, "failed to query stock item "+stockItemID, err)
	}
	item := mapping.ToDomainStockItem(m)
	return &item, nil
}

// FindStockItemBySKU retrieves a stock item by its per-tenant SKU.
func (r *PgxStockRepository) FindStockItemBySKU(ctx context.Context, tenantID string, sku string) (*domain.StockItem, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_items
		WHERE tenant_id = $1 AND sku = $2;
	`
	m, err := scanStockItem(r.pool.QueryRow(ctx, query, tenantID, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: stock item with SKU %s", apperrors.ErrNotFound, sku)
		}
		return nil, apperrors.NewAppError(500, "failed to query stock item by SKU", err)
	}
	item := mapping.ToDomainStockItem(m)
	return &item, nil
}

// ListStockItems retrieves a paginated list of stock items for the tenant.
func (r *PgxStockRepository) ListStockItems(ctx context.Context, tenantID string, limit int, offset int) ([]domain.StockItem, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_items
		WHERE tenant_id = $1
		ORDER BY name, stock_item_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list stock items", err)
	}
	defer rows.Close()

	var ms []models.StockItem
	for rows.Next() {
		m, err := scanStockItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock item row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock item rows", err)
	}

	return mapping.ToDomainStockItemSlice(ms), nil
}
