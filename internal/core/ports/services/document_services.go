package services

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/dto"
)

// TransactionSvcFacade manages pending and settled transactions. Creation
// always yields a PENDING transaction; the settlement engine owns the only
// legal transitions out of that status.
type TransactionSvcFacade interface {
	// CreateTransaction records a new pending transaction.
	CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// GetTransactionByID retrieves a transaction scoped by tenant.
	GetTransactionByID(ctx context.Context, tenantID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a token-paginated list, optionally filtered by status.
	ListTransactions(ctx context.Context, tenantID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
}

// OrderSvcFacade manages sales orders.
type OrderSvcFacade interface {
	// CreateOrder records a new PROCESSING order with its lines. Line stock
	// items must exist; availability is only advisory here, the binding check
	// happens at settlement.
	CreateOrder(ctx context.Context, tenantID string, req dto.CreateOrderRequest, userID string) (*domain.Order, error)

	// GetOrderByID retrieves an order with its lines, scoped by tenant.
	GetOrderByID(ctx context.Context, tenantID string, orderID string) (*domain.Order, error)

	// ListOrders retrieves a paginated list of orders for the tenant.
	ListOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Order, error)
}

// PayrollSvcFacade manages payroll runs.
type PayrollSvcFacade interface {
	CreatePayrollRun(ctx context.Context, tenantID string, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error)
	GetPayrollRunByID(ctx context.Context, tenantID string, payrollRunID string) (*domain.PayrollRun, error)
	ListPayrollRuns(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PayrollRun, error)
}

// PurchaseOrderSvcFacade manages purchase orders.
type PurchaseOrderSvcFacade interface {
	CreatePurchaseOrder(ctx context.Context, tenantID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)
	GetPurchaseOrderByID(ctx context.Context, tenantID string, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PurchaseOrder, error)
}
