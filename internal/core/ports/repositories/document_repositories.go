package repositories

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
)

// TransactionRepositoryFacade persists transactions. Status transitions do
// not happen here; they are owned by the settlement repository.
type TransactionRepositoryFacade interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a transaction scoped by tenant.
	FindTransactionByID(ctx context.Context, tenantID string, transactionID string) (*domain.Transaction, error)

	// FindTransactionByGatewayRef retrieves the transaction funded by the given gateway reference.
	FindTransactionByGatewayRef(ctx context.Context, tenantID string, gatewayRef string) (*domain.Transaction, error)

	// ListTransactions retrieves a token-paginated list, optionally filtered by status.
	ListTransactions(ctx context.Context, tenantID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListPendingTransactions retrieves every pending transaction for the tenant.
	ListPendingTransactions(ctx context.Context, tenantID string) ([]domain.Transaction, error)

	// AttachGatewayRef records the gateway reference funding a still-pending
	// transaction. A settled transaction is left untouched.
	AttachGatewayRef(ctx context.Context, tenantID string, transactionID string, gatewayRef string) error
}

// OrderRepositoryFacade persists sales orders together with their lines.
type OrderRepositoryFacade interface {
	// SaveOrder persists a new order and its lines as one unit.
	SaveOrder(ctx context.Context, order domain.Order) error

	// FindOrderByID retrieves an order with its lines, scoped by tenant.
	FindOrderByID(ctx context.Context, tenantID string, orderID string) (*domain.Order, error)

	// ListOrders retrieves a paginated list of orders for the tenant.
	ListOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Order, error)

	// ListProcessingOrders retrieves every order still awaiting settlement.
	ListProcessingOrders(ctx context.Context, tenantID string) ([]domain.Order, error)
}

// PayrollRunRepositoryFacade persists payroll runs.
type PayrollRunRepositoryFacade interface {
	SavePayrollRun(ctx context.Context, run domain.PayrollRun) error
	FindPayrollRunByID(ctx context.Context, tenantID string, payrollRunID string) (*domain.PayrollRun, error)
	ListPayrollRuns(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PayrollRun, error)
	ListPendingPayrollRuns(ctx context.Context, tenantID string) ([]domain.PayrollRun, error)
}

// PurchaseOrderRepositoryFacade persists purchase orders.
type PurchaseOrderRepositoryFacade interface {
	SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error
	FindPurchaseOrderByID(ctx context.Context, tenantID string, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PurchaseOrder, error)
	ListPendingPurchaseOrders(ctx context.Context, tenantID string) ([]domain.PurchaseOrder, error)
}
