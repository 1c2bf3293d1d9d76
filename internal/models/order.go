package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus mirrors the domain enum.
type OrderStatus string

// Order is the persistence twin of domain.Order. Lines live in order_lines.
type Order struct {
	OrderID      string          `db:"order_id"`
	TenantID     string          `db:"tenant_id"`
	OrderNumber  string          `db:"order_number"`
	CustomerName string          `db:"customer_name"`
	Status       OrderStatus     `db:"status"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	AuditFields
}

// OrderLine is the persistence twin of domain.OrderLine.
type OrderLine struct {
	OrderLineID string          `db:"order_line_id"`
	OrderID     string          `db:"order_id"`
	StockItemID string          `db:"stock_item_id"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}
