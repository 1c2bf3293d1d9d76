package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus is the payroll run lifecycle.
type PayrollStatus string

const (
	PayrollPending  PayrollStatus = "PENDING"
	PayrollPaid     PayrollStatus = "PAID"
	PayrollRejected PayrollStatus = "REJECTED"
)

// PayrollRun is a pending payroll disbursement. Settlement only flips the
// status and stamps the payment date; no shared balance is mutated.
type PayrollRun struct {
	PayrollRunID string          `json:"payrollRunID"`
	TenantID     string          `json:"tenantID"`
	Period       string          `json:"period"` // e.g. "2026-08"
	Amount       decimal.Decimal `json:"amount"`
	Status       PayrollStatus   `json:"status"`
	PaymentDate  *time.Time      `json:"paymentDate,omitempty"`
	AuditFields
}
