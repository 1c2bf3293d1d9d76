package domain

import (
	"github.com/shopspring/decimal"
)

// StockItem is a tenant-owned inventory position. Quantity never goes
// negative; it is decremented only by order settlement, all lines or none.
type StockItem struct {
	StockItemID  string          `json:"stockItemID"`
	TenantID     string          `json:"tenantID"`
	SKU          string          `json:"sku"` // unique per tenant
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorderLevel"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	AuditFields
}

// NeedsReorder reports whether the quantity has fallen to the reorder threshold.
func (s StockItem) NeedsReorder() bool {
	return s.Quantity <= s.ReorderLevel
}
