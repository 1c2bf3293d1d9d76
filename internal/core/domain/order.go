package domain

import (
	"github.com/shopspring/decimal"
)

// OrderStatus is the sales order lifecycle. PROCESSING is the only
// non-terminal status.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// OrderLine is one stock position requested by an order.
type OrderLine struct {
	OrderLineID string          `json:"orderLineID"`
	OrderID     string          `json:"orderID"`
	StockItemID string          `json:"stockItemID"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal returns quantity * unit price for the line.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Order is a sales order with its owned lines. Stock is decremented at most
// once per order, exactly at the PROCESSING -> COMPLETED transition, and only
// if every line's quantity is available at settlement time.
type Order struct {
	OrderID      string          `json:"orderID"`
	TenantID     string          `json:"tenantID"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Lines        []OrderLine     `json:"lines,omitempty"`
	AuditFields
}

// ComputeTotal sums the line totals.
func (o Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.LineTotal())
	}
	return total
}
