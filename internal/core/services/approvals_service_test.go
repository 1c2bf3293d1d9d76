package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/core/domain"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, tenantID string, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, tenantID, orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListProcessingOrders(ctx context.Context, tenantID string) ([]domain.Order, error) {
	args := m.Called(ctx, tenantID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

// --- Mock PayrollRunRepository ---
type MockPayrollRunRepository struct {
	mock.Mock
}

func (m *MockPayrollRunRepository) SavePayrollRun(ctx context.Context, run domain.PayrollRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockPayrollRunRepository) FindPayrollRunByID(ctx context.Context, tenantID string, payrollRunID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, tenantID, payrollRunID)
	var run *domain.PayrollRun
	if args.Get(0) != nil {
		run = args.Get(0).(*domain.PayrollRun)
	}
	return run, args.Error(1)
}

func (m *MockPayrollRunRepository) ListPayrollRuns(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PayrollRun, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var runs []domain.PayrollRun
	if args.Get(0) != nil {
		runs = args.Get(0).([]domain.PayrollRun)
	}
	return runs, args.Error(1)
}

func (m *MockPayrollRunRepository) ListPendingPayrollRuns(ctx context.Context, tenantID string) ([]domain.PayrollRun, error) {
	args := m.Called(ctx, tenantID)
	var runs []domain.PayrollRun
	if args.Get(0) != nil {
		runs = args.Get(0).([]domain.PayrollRun)
	}
	return runs, args.Error(1)
}

// --- Mock PurchaseOrderRepository ---
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, tenantID string, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, purchaseOrderID)
	var po *domain.PurchaseOrder
	if args.Get(0) != nil {
		po = args.Get(0).(*domain.PurchaseOrder)
	}
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var pos []domain.PurchaseOrder
	if args.Get(0) != nil {
		pos = args.Get(0).([]domain.PurchaseOrder)
	}
	return pos, args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPendingPurchaseOrders(ctx context.Context, tenantID string) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID)
	var pos []domain.PurchaseOrder
	if args.Get(0) != nil {
		pos = args.Get(0).([]domain.PurchaseOrder)
	}
	return pos, args.Error(1)
}

// --- Test Suite ---
type ApprovalsServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockOrderRepo   *MockOrderRepository
	mockPayrollRepo *MockPayrollRunRepository
	mockPORepo      *MockPurchaseOrderRepository
	service         portssvc.ApprovalsSvcFacade
	tenantID        string
}

func (suite *ApprovalsServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockPayrollRepo = new(MockPayrollRunRepository)
	suite.mockPORepo = new(MockPurchaseOrderRepository)
	suite.service = services.NewApprovalsService(
		suite.mockTxnRepo,
		suite.mockOrderRepo,
		suite.mockPayrollRepo,
		suite.mockPORepo,
	)
	suite.tenantID = uuid.NewString()
}

func (suite *ApprovalsServiceTestSuite) TestPendingApprovals_MergesAndSortsNewestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{{
		TransactionID: "txn-1",
		Description:   "Office rent",
		Amount:        decimal.NewFromInt(500),
		Kind:          domain.Expense,
		Status:        domain.TransactionPending,
		EffectiveDate: base.Add(48 * time.Hour),
	}}
	orders := []domain.Order{{
		OrderID:      "order-1",
		OrderNumber:  "ORD-001",
		CustomerName: "Acme Ltd",
		Status:       domain.OrderProcessing,
		TotalAmount:  decimal.NewFromInt(250),
		AuditFields:  domain.AuditFields{CreatedAt: base.Add(24 * time.Hour)},
	}}
	runs := []domain.PayrollRun{{
		PayrollRunID: "run-1",
		Period:       "2026-02",
		Amount:       decimal.NewFromInt(8000),
		Status:       domain.PayrollPending,
		AuditFields:  domain.AuditFields{CreatedAt: base},
	}}

	suite.mockTxnRepo.On("ListPendingTransactions", mock.Anything, suite.tenantID).Return(txns, nil).Once()
	suite.mockOrderRepo.On("ListProcessingOrders", mock.Anything, suite.tenantID).Return(orders, nil).Once()
	suite.mockPayrollRepo.On("ListPendingPayrollRuns", mock.Anything, suite.tenantID).Return(runs, nil).Once()
	suite.mockPORepo.On("ListPendingPurchaseOrders", mock.Anything, suite.tenantID).Return([]domain.PurchaseOrder{}, nil).Once()

	feed, err := suite.service.PendingApprovals(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.False(feed.Partial)
	suite.Require().Len(feed.Approvals, 3)
	suite.Equal("txn-1", feed.Approvals[0].ID)
	suite.Equal("order-1", feed.Approvals[1].ID)
	suite.Equal("run-1", feed.Approvals[2].ID)
	suite.Equal("Order ORD-001", feed.Approvals[1].Title)
	suite.Equal("Acme Ltd", feed.Approvals[1].Details["customerName"])

	suite.Require().Len(feed.Summary, 4)
	for _, s := range feed.Summary {
		suite.True(s.Available)
	}
}

func (suite *ApprovalsServiceTestSuite) TestPendingApprovals_FailedKindDegrades() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListPendingTransactions", mock.Anything, suite.tenantID).Return([]domain.Transaction{}, nil).Once()
	suite.mockOrderRepo.On("ListProcessingOrders", mock.Anything, suite.tenantID).Return(nil, assert.AnError).Once()
	suite.mockPayrollRepo.On("ListPendingPayrollRuns", mock.Anything, suite.tenantID).Return([]domain.PayrollRun{
		{PayrollRunID: "run-1", Period: "2026-02", Amount: decimal.NewFromInt(8000), Status: domain.PayrollPending},
	}, nil).Once()
	suite.mockPORepo.On("ListPendingPurchaseOrders", mock.Anything, suite.tenantID).Return([]domain.PurchaseOrder{}, nil).Once()

	feed, err := suite.service.PendingApprovals(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.True(feed.Partial)
	suite.Require().Len(feed.Approvals, 1)
	suite.Equal("run-1", feed.Approvals[0].ID)

	var orderSummary *struct {
		available bool
		count     int
	}
	for _, s := range feed.Summary {
		if s.Kind == domain.KindOrder {
			orderSummary = &struct {
				available bool
				count     int
			}{s.Available, s.Count}
		}
	}
	suite.Require().NotNil(orderSummary)
	suite.False(orderSummary.available)
	suite.Zero(orderSummary.count)
}

func (suite *ApprovalsServiceTestSuite) TestPendingApprovals_TieBrokenByID() {
	ctx := context.Background()
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		{TransactionID: "txn-b", Description: "B", Amount: decimal.NewFromInt(1), Status: domain.TransactionPending, EffectiveDate: when},
		{TransactionID: "txn-a", Description: "A", Amount: decimal.NewFromInt(1), Status: domain.TransactionPending, EffectiveDate: when},
	}

	suite.mockTxnRepo.On("ListPendingTransactions", mock.Anything, suite.tenantID).Return(txns, nil).Once()
	suite.mockOrderRepo.On("ListProcessingOrders", mock.Anything, suite.tenantID).Return([]domain.Order{}, nil).Once()
	suite.mockPayrollRepo.On("ListPendingPayrollRuns", mock.Anything, suite.tenantID).Return([]domain.PayrollRun{}, nil).Once()
	suite.mockPORepo.On("ListPendingPurchaseOrders", mock.Anything, suite.tenantID).Return([]domain.PurchaseOrder{}, nil).Once()

	feed, err := suite.service.PendingApprovals(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.Require().Len(feed.Approvals, 2)
	suite.Equal("txn-a", feed.Approvals[0].ID)
	suite.Equal("txn-b", feed.Approvals[1].ID)
}

func (suite *ApprovalsServiceTestSuite) TestPendingApprovals_AllSourcesFail_StillResponds() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListPendingTransactions", mock.Anything, suite.tenantID).Return(nil, assert.AnError).Once()
	suite.mockOrderRepo.On("ListProcessingOrders", mock.Anything, suite.tenantID).Return(nil, assert.AnError).Once()
	suite.mockPayrollRepo.On("ListPendingPayrollRuns", mock.Anything, suite.tenantID).Return(nil, assert.AnError).Once()
	suite.mockPORepo.On("ListPendingPurchaseOrders", mock.Anything, suite.tenantID).Return(nil, assert.AnError).Once()

	feed, err := suite.service.PendingApprovals(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.True(feed.Partial)
	suite.Empty(feed.Approvals)
	for _, s := range feed.Summary {
		suite.False(s.Available)
	}
}

func TestApprovalsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalsServiceTestSuite))
}
