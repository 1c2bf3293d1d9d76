package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the shared pool. The
// settlement repository shares the account repository so settlement units and
// plain account reads stay on one set of queries.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	payrollRepo := newPgxPayrollRepository(dbPool)
	purchaseOrderRepo := newPgxPurchaseOrderRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	settlementRepo := newPgxSettlementRepository(dbPool, accountRepo)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:       accountRepo,
		StockRepo:         stockRepo,
		TransactionRepo:   transactionRepo,
		OrderRepo:         orderRepo,
		PayrollRepo:       payrollRepo,
		PurchaseOrderRepo: purchaseOrderRepo,
		PaymentRepo:       paymentRepo,
		SettlementRepo:    settlementRepo,
		UserRepo:          userRepo,
	}
}
