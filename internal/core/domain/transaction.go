package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates the direction of a transaction.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// TransactionStatus is the transaction lifecycle. PENDING is the only
// non-terminal status; the settlement engine performs the single legal
// transition out of it.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "PENDING"
	TransactionPaid     TransactionStatus = "PAID"
	TransactionRejected TransactionStatus = "REJECTED"
)

// Transaction is a pending or settled money movement. It references the
// account it will affect but does not affect it until settled: the balance
// increment happens at most once, exactly when status first becomes PAID.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	TenantID      string            `json:"tenantID"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"` // positive; direction comes from Kind
	Kind          TransactionKind   `json:"kind"`
	Category      string            `json:"category"`
	EffectiveDate time.Time         `json:"effectiveDate"`
	AccountID     *string           `json:"accountID,omitempty"` // nullable until an account is chosen
	Status        TransactionStatus `json:"status"`
	GatewayRef    *string           `json:"gatewayRef,omitempty"` // correlates to a Payment
	AuditFields
}

// SignedAmount returns the balance delta this transaction applies when paid.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
