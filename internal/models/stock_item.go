package models

import (
	"github.com/shopspring/decimal"
)

// StockItem is the persistence twin of domain.StockItem.
type StockItem struct {
	StockItemID  string          `db:"stock_item_id"`
	TenantID     string          `db:"tenant_id"`
	SKU          string          `db:"sku"`
	Name         string          `db:"name"`
	Quantity     int64           `db:"quantity"`
	ReorderLevel int64           `db:"reorder_level"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	AuditFields
}
