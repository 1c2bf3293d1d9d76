package services

import (
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gateway portssvc.GatewayClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Stock = NewStockService(repos.StockRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.StockRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo)

	// Settlement sits behind every approve/reject path, including payment
	// reconciliation below.
	container.Settlement = NewSettlementService(repos.SettlementRepo)

	container.Approvals = NewApprovalsService(
		repos.TransactionRepo,
		repos.OrderRepo,
		repos.PayrollRepo,
		repos.PurchaseOrderRepo,
	)

	// Outside production a gateway outage falls back to local references so
	// the payment flow stays demoable.
	container.Reconciliation = NewReconciliationService(
		repos.PaymentRepo,
		repos.TransactionRepo,
		repos.SettlementRepo,
		gateway,
		!cfg.IsProduction,
	)

	container.Auth = NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade        = (*AccountService)(nil)
	_ portssvc.StockSvcFacade          = (*StockService)(nil)
	_ portssvc.TransactionSvcFacade    = (*TransactionService)(nil)
	_ portssvc.OrderSvcFacade          = (*OrderService)(nil)
	_ portssvc.PayrollSvcFacade        = (*PayrollService)(nil)
	_ portssvc.PurchaseOrderSvcFacade  = (*PurchaseOrderService)(nil)
	_ portssvc.SettlementSvcFacade     = (*SettlementService)(nil)
	_ portssvc.ApprovalsSvcFacade      = (*ApprovalsService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*ReconciliationService)(nil)
	_ portssvc.AuthSvcFacade           = (*AuthService)(nil)
)
