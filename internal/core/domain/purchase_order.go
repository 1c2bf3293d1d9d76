package domain

import (
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the purchase order lifecycle.
type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderApproved  PurchaseOrderStatus = "APPROVED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
)

// PurchaseOrder is a pending procurement document. Settlement only flips the
// status; receiving goods against it is a separate concern.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"`
	TenantID        string              `json:"tenantID"`
	OrderNumber     string              `json:"orderNumber"`
	SupplierName    string              `json:"supplierName"`
	Amount          decimal.Decimal     `json:"amount"`
	Status          PurchaseOrderStatus `json:"status"`
	AuditFields
}
