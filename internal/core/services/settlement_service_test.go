package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/core/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettlementRepository ---
type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) ApproveTransaction(ctx context.Context, tenantID string, transactionID string, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID, userID, now)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockSettlementRepository) RejectTransaction(ctx context.Context, tenantID string, transactionID string, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID, userID, now)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockSettlementRepository) ApproveOrder(ctx context.Context, tenantID string, orderID string, userID string, now time.Time) (*domain.Order, error) {
	args := m.Called(ctx, tenantID, orderID, userID, now)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockSettlementRepository) RejectOrder(ctx context.Context, tenantID string, orderID string, userID string, now time.Time) (*domain.Order, error) {
	args := m.Called(ctx, tenantID, orderID, userID, now)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockSettlementRepository) ApprovePayrollRun(ctx context.Context, tenantID string, payrollRunID string, userID string, now time.Time) (*domain.PayrollRun, error) {
	args := m.Called(ctx, tenantID, payrollRunID, userID, now)
	var run *domain.PayrollRun
	if args.Get(0) != nil {
		run = args.Get(0).(*domain.PayrollRun)
	}
	return run, args.Error(1)
}

func (m *MockSettlementRepository) RejectPayrollRun(ctx context.Context, tenantID string, payrollRunID string, userID string, now time.Time) (*domain.PayrollRun, error) {
	args := m.Called(ctx, tenantID, payrollRunID, userID, now)
	var run *domain.PayrollRun
	if args.Get(0) != nil {
		run = args.Get(0).(*domain.PayrollRun)
	}
	return run, args.Error(1)
}

func (m *MockSettlementRepository) ApprovePurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, userID string, now time.Time) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, purchaseOrderID, userID, now)
	var po *domain.PurchaseOrder
	if args.Get(0) != nil {
		po = args.Get(0).(*domain.PurchaseOrder)
	}
	return po, args.Error(1)
}

func (m *MockSettlementRepository) RejectPurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, userID string, now time.Time) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tenantID, purchaseOrderID, userID, now)
	var po *domain.PurchaseOrder
	if args.Get(0) != nil {
		po = args.Get(0).(*domain.PurchaseOrder)
	}
	return po, args.Error(1)
}

// --- Test Suite ---
type SettlementServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettlementRepository
	service  portssvc.SettlementSvcFacade
	tenantID string
	userID   string
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettlementRepository)
	suite.service = services.NewSettlementService(suite.mockRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *SettlementServiceTestSuite) TestSettle_UnknownKind() {
	ctx := context.Background()
	req := dto.SettleRequest{Kind: "INVOICE", DocumentID: uuid.NewString(), Action: domain.ActionApprove}

	resp, err := suite.service.Settle(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApproveTransaction")
}

func (suite *SettlementServiceTestSuite) TestSettle_UnknownAction() {
	ctx := context.Background()
	req := dto.SettleRequest{Kind: domain.KindTransaction, DocumentID: uuid.NewString(), Action: "DEFER"}

	resp, err := suite.service.Settle(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
}

func (suite *SettlementServiceTestSuite) TestSettle_ApproveTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	settled := &domain.Transaction{TransactionID: txnID, Status: domain.TransactionPaid}

	suite.mockRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(settled, nil).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindTransaction,
		DocumentID: txnID,
		Action:     domain.ActionApprove,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindTransaction, resp.Kind)
	suite.Equal(txnID, resp.DocumentID)
	suite.Equal(string(domain.TransactionPaid), resp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_RejectTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	settled := &domain.Transaction{TransactionID: txnID, Status: domain.TransactionRejected}

	suite.mockRepo.On("RejectTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(settled, nil).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindTransaction,
		DocumentID: txnID,
		Action:     domain.ActionReject,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(string(domain.TransactionRejected), resp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_AlreadySettled_ReturnsConflict() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindTransaction,
		DocumentID: txnID,
		Action:     domain.ActionApprove,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(resp)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_ApproveOrder_InsufficientStock() {
	ctx := context.Background()
	orderID := uuid.NewString()
	stockErr := &apperrors.InsufficientStockError{SKU: "SKU-1", Available: 2, Requested: 5}

	suite.mockRepo.On("ApproveOrder", ctx, suite.tenantID, orderID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil, stockErr).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindOrder,
		DocumentID: orderID,
		Action:     domain.ActionApprove,
	}, suite.userID)

	suite.Require().Error(err)
	var got *apperrors.InsufficientStockError
	suite.ErrorAs(err, &got)
	suite.Equal("SKU-1", got.SKU)
	suite.Nil(resp)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_ApproveOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	completed := &domain.Order{
		OrderID:     orderID,
		Status:      domain.OrderCompleted,
		TotalAmount: decimal.NewFromInt(250),
	}

	suite.mockRepo.On("ApproveOrder", ctx, suite.tenantID, orderID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(completed, nil).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindOrder,
		DocumentID: orderID,
		Action:     domain.ActionApprove,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(string(domain.OrderCompleted), resp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_ApprovePayrollRun_Success() {
	ctx := context.Background()
	runID := uuid.NewString()
	paid := &domain.PayrollRun{PayrollRunID: runID, Status: domain.PayrollPaid}

	suite.mockRepo.On("ApprovePayrollRun", ctx, suite.tenantID, runID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(paid, nil).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindPayrollRun,
		DocumentID: runID,
		Action:     domain.ActionApprove,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(string(domain.PayrollPaid), resp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_RejectPurchaseOrder_Success() {
	ctx := context.Background()
	poID := uuid.NewString()
	cancelled := &domain.PurchaseOrder{PurchaseOrderID: poID, Status: domain.PurchaseOrderCancelled}

	suite.mockRepo.On("RejectPurchaseOrder", ctx, suite.tenantID, poID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(cancelled, nil).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindPurchaseOrder,
		DocumentID: poID,
		Action:     domain.ActionReject,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(string(domain.PurchaseOrderCancelled), resp.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettle_MissingDocument_ReturnsNotFound() {
	ctx := context.Background()
	runID := uuid.NewString()

	suite.mockRepo.On("RejectPayrollRun", ctx, suite.tenantID, runID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Settle(ctx, suite.tenantID, dto.SettleRequest{
		Kind:       domain.KindPayrollRun,
		DocumentID: runID,
		Action:     domain.ActionReject,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(resp)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
