package repositories

// RepositoryProvider bundles every repository implementation for wiring into
// the services at startup.
type RepositoryProvider struct {
	AccountRepo       AccountRepositoryFacade
	StockRepo         StockRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	OrderRepo         OrderRepositoryFacade
	PayrollRepo       PayrollRunRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	SettlementRepo    SettlementRepositoryFacade
	UserRepo          UserRepositoryFacade
}
