package models

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account at the persistence layer.
type AccountType string

// Account is the persistence twin of domain.Account.
type Account struct {
	AccountID     string          `db:"account_id"`
	TenantID      string          `db:"tenant_id"`
	Name          string          `db:"name"`
	AccountType   AccountType     `db:"account_type"`
	AccountNumber string          `db:"account_number"` // nullable
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
