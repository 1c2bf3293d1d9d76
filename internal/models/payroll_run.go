package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus mirrors the domain enum.
type PayrollStatus string

// PayrollRun is the persistence twin of domain.PayrollRun.
type PayrollRun struct {
	PayrollRunID string          `db:"payroll_run_id"`
	TenantID     string          `db:"tenant_id"`
	Period       string          `db:"period"`
	Amount       decimal.Decimal `db:"amount"`
	Status       PayrollStatus   `db:"status"`
	PaymentDate  *time.Time      `db:"payment_date"` // nullable, stamped on approval
	AuditFields
}
