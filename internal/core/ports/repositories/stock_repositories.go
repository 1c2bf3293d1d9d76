package repositories

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
)

// StockRepositoryFacade persists stock items. Quantity is never written
// here; decrements belong to the settlement repository's order path.
type StockRepositoryFacade interface {
	// SaveStockItem persists a new stock item.
	SaveStockItem(ctx context.Context, item domain.StockItem) error

	// FindStockItemByID retrieves a stock item scoped by tenant.
	FindStockItemByID(ctx context.Context, tenantID string, stockItemID string) (*domain.StockItem, error)

	// FindStockItemBySKU retrieves a stock item by its per-tenant SKU.
	FindStockItemBySKU(ctx context.Context, tenantID string, sku string) (*domain.StockItem, error)

	// ListStockItems retrieves a paginated list of stock items for the tenant.
	ListStockItems(ctx context.Context, tenantID string, limit int, offset int) ([]domain.StockItem, error)
}
