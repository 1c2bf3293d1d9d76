package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies where a tenant's money lives or flows.
type AccountType string

const (
	AccountBank    AccountType = "BANK"
	AccountMobile  AccountType = "MOBILE"
	AccountCash    AccountType = "CASH"
	AccountRevenue AccountType = "REVENUE"
	AccountExpense AccountType = "EXPENSE"
)

// SalesRevenueAccountName is the well-known account credited when an order settles.
const SalesRevenueAccountName = "Sales Revenue"

// Account is a tenant-owned balance holder. The balance is mutated only by
// the settlement engine, always via a relative increment inside a settlement
// transaction; there is no absolute "set balance" operation anywhere.
type Account struct {
	AccountID     string          `json:"accountID"`
	TenantID      string          `json:"tenantID"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	AccountNumber string          `json:"accountNumber,omitempty"` // external bank/mobile number, optional
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
