package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind is the closed set of settleable document kinds. Settlement
// dispatches on it with an exhaustive switch; an unknown kind is a
// validation failure, never a silent fall-through.
type DocumentKind string

const (
	KindTransaction   DocumentKind = "TRANSACTION"
	KindOrder         DocumentKind = "ORDER"
	KindPayrollRun    DocumentKind = "PAYROLL_RUN"
	KindPurchaseOrder DocumentKind = "PURCHASE_ORDER"
)

// AllDocumentKinds lists every settleable kind, in aggregation order.
func AllDocumentKinds() []DocumentKind {
	return []DocumentKind{KindTransaction, KindOrder, KindPayrollRun, KindPurchaseOrder}
}

// Valid reports whether k names a known document kind.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindTransaction, KindOrder, KindPayrollRun, KindPurchaseOrder:
		return true
	}
	return false
}

// SettlementAction is what an approver can do with a pending document.
type SettlementAction string

const (
	ActionApprove SettlementAction = "APPROVE"
	ActionReject  SettlementAction = "REJECT"
)

// Valid reports whether a names a known settlement action.
func (a SettlementAction) Valid() bool {
	return a == ActionApprove || a == ActionReject
}

// PendingApproval is the normalized shape every document kind is reduced to
// for the approvals feed.
type PendingApproval struct {
	ID      string            `json:"id"`
	Kind    DocumentKind      `json:"kind"`
	Title   string            `json:"title"`
	Amount  decimal.Decimal   `json:"amount"`
	Status  string            `json:"status"`
	Date    time.Time         `json:"date"`
	Details map[string]string `json:"details,omitempty"`
}
