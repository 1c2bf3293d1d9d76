package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus is the gateway-facing payment lifecycle.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment mirrors one charge at the external gateway, keyed by the globally
// unique gateway reference. It is created when a charge is initiated, updated
// by reconciliation, and never deleted. Once status reaches SUCCESS every
// further outcome notification for the reference is a no-op.
type Payment struct {
	PaymentID     string            `json:"paymentID"`
	GatewayRef    string            `json:"gatewayRef"`
	TenantID      string            `json:"tenantID"`
	UserID        string            `json:"userID"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Status        PaymentStatus     `json:"status"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	TransactionID *string           `json:"transactionID,omitempty"` // the transaction this payment funds
	AuditFields
}
