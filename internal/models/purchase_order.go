package models

import (
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus mirrors the domain enum.
type PurchaseOrderStatus string

// PurchaseOrder is the persistence twin of domain.PurchaseOrder.
type PurchaseOrder struct {
	PurchaseOrderID string              `db:"purchase_order_id"`
	TenantID        string              `db:"tenant_id"`
	OrderNumber     string              `db:"order_number"`
	SupplierName    string              `db:"supplier_name"`
	Amount          decimal.Decimal     `db:"amount"`
	Status          PurchaseOrderStatus `db:"status"`
	AuditFields
}
