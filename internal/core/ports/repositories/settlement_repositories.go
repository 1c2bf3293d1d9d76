package repositories

import (
	"context"
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
)

// SettlementRepositoryFacade executes settlement units. Every method runs as
// one database transaction: a conditional status transition against the
// expected pre-settlement status plus the kind-specific side effects, all
// applied or none. A document whose status already advanced yields
// apperrors.ErrConflict; a missing or cross-tenant document yields
// apperrors.ErrNotFound; an order short on stock yields
// *apperrors.InsufficientStockError with nothing written.
type SettlementRepositoryFacade interface {
	// ApproveTransaction flips PENDING -> PAID and, when an account is
	// referenced, increments its balance by the signed amount.
	ApproveTransaction(ctx context.Context, tenantID string, transactionID string, userID string, now time.Time) (*domain.Transaction, error)

	// RejectTransaction flips PENDING -> REJECTED with no balance effect.
	RejectTransaction(ctx context.Context, tenantID string, transactionID string, userID string, now time.Time) (*domain.Transaction, error)

	// ApproveOrder re-checks every line against live stock under row locks,
	// decrements all lines, credits (creating if needed) the tenant's sales
	// revenue account, records a PAID sale transaction and flips
	// PROCESSING -> COMPLETED.
	ApproveOrder(ctx context.Context, tenantID string, orderID string, userID string, now time.Time) (*domain.Order, error)

	// RejectOrder flips PROCESSING -> CANCELLED with no stock effect.
	RejectOrder(ctx context.Context, tenantID string, orderID string, userID string, now time.Time) (*domain.Order, error)

	// ApprovePayrollRun flips PENDING -> PAID and stamps the payment date.
	ApprovePayrollRun(ctx context.Context, tenantID string, payrollRunID string, userID string, now time.Time) (*domain.PayrollRun, error)

	// RejectPayrollRun flips PENDING -> REJECTED.
	RejectPayrollRun(ctx context.Context, tenantID string, payrollRunID string, userID string, now time.Time) (*domain.PayrollRun, error)

	// ApprovePurchaseOrder flips PENDING -> APPROVED.
	ApprovePurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, userID string, now time.Time) (*domain.PurchaseOrder, error)

	// RejectPurchaseOrder flips PENDING -> CANCELLED.
	RejectPurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, userID string, now time.Time) (*domain.PurchaseOrder, error)
}
