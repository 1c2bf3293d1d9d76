package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind and TransactionStatus mirror the domain enums.
type (
	TransactionKind   string
	TransactionStatus string
)

// Transaction is the persistence twin of domain.Transaction.
type Transaction struct {
	TransactionID string            `db:"transaction_id"`
	TenantID      string            `db:"tenant_id"`
	Description   string            `db:"description"`
	Amount        decimal.Decimal   `db:"amount"`
	Kind          TransactionKind   `db:"kind"`
	Category      string            `db:"category"`
	EffectiveDate time.Time         `db:"effective_date"`
	AccountID     *string           `db:"account_id"`  // nullable
	Status        TransactionStatus `db:"status"`
	GatewayRef    *string           `db:"gateway_ref"` // nullable, unique when set
	AuditFields
}
