package models

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the domain enum.
type PaymentStatus string

// Payment is the persistence twin of domain.Payment. Metadata is stored as
// a jsonb column and (un)marshalled in the repository.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	GatewayRef    string          `db:"gateway_ref"` // globally unique
	TenantID      string          `db:"tenant_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Status        PaymentStatus   `db:"status"`
	Metadata      []byte          `db:"metadata"`
	TransactionID *string         `db:"transaction_id"` // nullable
	AuditFields
}
