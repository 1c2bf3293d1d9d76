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

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByReference(ctx context.Context, gatewayRef string) (*domain.Payment, error) {
	args := m.Called(ctx, gatewayRef)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) UpdatePaymentStatusIfUnsettled(ctx context.Context, gatewayRef string, status domain.PaymentStatus, metadata map[string]string, now time.Time) (bool, error) {
	args := m.Called(ctx, gatewayRef, status, metadata, now)
	return args.Bool(0), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, tenantID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByGatewayRef(ctx context.Context, tenantID string, gatewayRef string) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, gatewayRef)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, tenantID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, tenantID, status, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) ListPendingTransactions(ctx context.Context, tenantID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tenantID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) AttachGatewayRef(ctx context.Context, tenantID string, transactionID string, gatewayRef string) error {
	args := m.Called(ctx, tenantID, transactionID, gatewayRef)
	return args.Error(0)
}

// --- Mock GatewayClient ---
type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateCharge(ctx context.Context, amount decimal.Decimal, currency string, phoneNumber string, provider string) (*portssvc.GatewayCharge, error) {
	args := m.Called(ctx, amount, currency, phoneNumber, provider)
	var charge *portssvc.GatewayCharge
	if args.Get(0) != nil {
		charge = args.Get(0).(*portssvc.GatewayCharge)
	}
	return charge, args.Error(1)
}

func (m *MockGatewayClient) FetchStatus(ctx context.Context, reference string) (*portssvc.GatewayCharge, error) {
	args := m.Called(ctx, reference)
	var charge *portssvc.GatewayCharge
	if args.Get(0) != nil {
		charge = args.Get(0).(*portssvc.GatewayCharge)
	}
	return charge, args.Error(1)
}

// --- Test Suite ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo    *MockPaymentRepository
	mockTxnRepo        *MockTransactionRepository
	mockSettlementRepo *MockSettlementRepository
	mockGateway        *MockGatewayClient
	service            portssvc.ReconciliationSvcFacade
	tenantID           string
	userID             string
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSettlementRepo = new(MockSettlementRepository)
	suite.mockGateway = new(MockGatewayClient)
	suite.service = services.NewReconciliationService(
		suite.mockPaymentRepo,
		suite.mockTxnRepo,
		suite.mockSettlementRepo,
		suite.mockGateway,
		true,
	)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReconciliationServiceTestSuite) pendingPayment(gatewayRef string, txnID string) *domain.Payment {
	return &domain.Payment{
		PaymentID:     uuid.NewString(),
		GatewayRef:    gatewayRef,
		TenantID:      suite.tenantID,
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(100),
		Currency:      "KES",
		Status:        domain.PaymentPending,
		TransactionID: &txnID,
	}
}

// --- InitiatePayment Tests ---

func (suite *ReconciliationServiceTestSuite) TestInitiatePayment_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	txn := &domain.Transaction{TransactionID: txnID, TenantID: suite.tenantID, Amount: amount, Status: domain.TransactionPending}
	charge := &portssvc.GatewayCharge{Reference: "GW-" + uuid.NewString(), Status: "pending"}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.tenantID, txnID).Return(txn, nil).Once()
	suite.mockGateway.On("CreateCharge", ctx, amount, "KES", "+254700000001", "mpesa").Return(charge, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.GatewayRef == charge.Reference && p.Status == domain.PaymentPending && p.TenantID == suite.tenantID
	})).Return(nil).Once()
	suite.mockTxnRepo.On("AttachGatewayRef", ctx, suite.tenantID, txnID, charge.Reference).Return(nil).Once()

	payment, err := suite.service.InitiatePayment(ctx, suite.tenantID, dto.InitiatePaymentRequest{
		TransactionID: txnID,
		Amount:        amount,
		PhoneNumber:   "+254700000001",
		Provider:      "mpesa",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(charge.Reference, payment.GatewayRef)
	suite.Equal(domain.PaymentPending, payment.Status)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestInitiatePayment_SettledTransaction_Conflict() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.Transaction{TransactionID: txnID, TenantID: suite.tenantID, Amount: decimal.NewFromInt(100), Status: domain.TransactionPaid}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.tenantID, txnID).Return(txn, nil).Once()

	payment, err := suite.service.InitiatePayment(ctx, suite.tenantID, dto.InitiatePaymentRequest{
		TransactionID: txnID,
		Amount:        decimal.NewFromInt(100),
		PhoneNumber:   "+254700000001",
		Provider:      "mpesa",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(payment)
	suite.mockGateway.AssertNotCalled(suite.T(), "CreateCharge")
}

func (suite *ReconciliationServiceTestSuite) TestInitiatePayment_AmountMismatch() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.Transaction{TransactionID: txnID, TenantID: suite.tenantID, Amount: decimal.NewFromInt(100), Status: domain.TransactionPending}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.tenantID, txnID).Return(txn, nil).Once()

	payment, err := suite.service.InitiatePayment(ctx, suite.tenantID, dto.InitiatePaymentRequest{
		TransactionID: txnID,
		Amount:        decimal.NewFromInt(99),
		PhoneNumber:   "+254700000001",
		Provider:      "mpesa",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
}

func (suite *ReconciliationServiceTestSuite) TestInitiatePayment_GatewayDown_DemoFallback() {
	ctx := context.Background()
	txnID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	txn := &domain.Transaction{TransactionID: txnID, TenantID: suite.tenantID, Amount: amount, Status: domain.TransactionPending}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.tenantID, txnID).Return(txn, nil).Once()
	suite.mockGateway.On("CreateCharge", ctx, amount, "KES", "+254700000001", "mpesa").
		Return(nil, apperrors.ErrUpstreamUnavailable).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockTxnRepo.On("AttachGatewayRef", ctx, suite.tenantID, txnID, mock.AnythingOfType("string")).Return(nil).Once()

	payment, err := suite.service.InitiatePayment(ctx, suite.tenantID, dto.InitiatePaymentRequest{
		TransactionID: txnID,
		Amount:        amount,
		PhoneNumber:   "+254700000001",
		Provider:      "mpesa",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Contains(payment.GatewayRef, "LOCAL-")
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

// --- GetPayment Tests ---

func (suite *ReconciliationServiceTestSuite) TestGetPayment_CrossTenant_NotFound() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, uuid.NewString())
	payment.TenantID = uuid.NewString() // someone else's payment

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()

	got, err := suite.service.GetPayment(ctx, suite.tenantID, gatewayRef)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

// --- HandleWebhook Tests ---

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_Success_SettlesTransaction() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, txnID)
	settled := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentSuccess}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatusIfUnsettled", ctx, gatewayRef, domain.PaymentSuccess, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	suite.mockSettlementRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(&domain.Transaction{TransactionID: txnID, Status: domain.TransactionPaid}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_DuplicateDelivery_NoOp() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	settled := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentSuccess}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatusIfUnsettled")
	suite.mockSettlementRepo.AssertNotCalled(suite.T(), "ApproveTransaction")
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_RaceLoser_ReturnsStoredRecord() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, txnID)
	settled := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentSuccess}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	// A concurrent notification settled the payment between our read and write.
	suite.mockPaymentRepo.On("UpdatePaymentStatusIfUnsettled", ctx, gatewayRef, domain.PaymentSuccess, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(false, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockSettlementRepo.AssertNotCalled(suite.T(), "ApproveTransaction")
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_TransactionAlreadySettled_ConflictSwallowed() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, txnID)
	settled := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentSuccess}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatusIfUnsettled", ctx, gatewayRef, domain.PaymentSuccess, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	// The transaction was approved manually before the webhook landed.
	suite.mockSettlementRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()
	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_FailedStatus_TransactionUntouched() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, txnID)
	failed := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentFailed}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatusIfUnsettled", ctx, gatewayRef, domain.PaymentFailed, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(failed, nil).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "failed"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentFailed, got.Status)
	suite.mockSettlementRepo.AssertNotCalled(suite.T(), "ApproveTransaction")
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_UnrecognizedStatus_LeavesStateAlone() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, uuid.NewString())

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "processing"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, got.Status)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatusIfUnsettled")
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_UnknownReference_NotFound() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

// --- Reconcile Tests ---

func (suite *ReconciliationServiceTestSuite) TestReconcile_FetchesGatewayAndApplies() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, txnID)
	settled := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentSuccess}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	suite.mockGateway.On("FetchStatus", ctx, gatewayRef).
		Return(&portssvc.GatewayCharge{Reference: gatewayRef, Status: "completed"}, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatusIfUnsettled", ctx, gatewayRef, domain.PaymentSuccess, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	suite.mockSettlementRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(&domain.Transaction{TransactionID: txnID, Status: domain.TransactionPaid}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()

	got, err := suite.service.Reconcile(ctx, suite.tenantID, gatewayRef, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_GatewayUnavailable_ReturnsStoredRecord() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	payment := suite.pendingPayment(gatewayRef, uuid.NewString())

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	suite.mockGateway.On("FetchStatus", ctx, gatewayRef).
		Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	got, err := suite.service.Reconcile(ctx, suite.tenantID, gatewayRef, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, got.Status)
	suite.Equal(gatewayRef, got.GatewayRef)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatusIfUnsettled")
	suite.mockSettlementRepo.AssertNotCalled(suite.T(), "ApproveTransaction")
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_StoredSuccessWithPendingTransaction_RedrivesApproval() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	// An earlier notification advanced the payment but died before settling
	// the funded transaction.
	payment := suite.pendingPayment(gatewayRef, txnID)
	payment.Status = domain.PaymentSuccess

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(payment, nil).Once()
	suite.mockSettlementRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(&domain.Transaction{TransactionID: txnID, Status: domain.TransactionPaid}, nil).Once()

	got, err := suite.service.Reconcile(ctx, suite.tenantID, gatewayRef, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockGateway.AssertNotCalled(suite.T(), "FetchStatus")
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestHandleWebhook_DuplicateDelivery_ReapprovalConflictSwallowed() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	txnID := uuid.NewString()
	settled := suite.pendingPayment(gatewayRef, txnID)
	settled.Status = domain.PaymentSuccess

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()
	suite.mockSettlementRepo.On("ApproveTransaction", ctx, suite.tenantID, txnID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	got, err := suite.service.HandleWebhook(ctx, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatusIfUnsettled")
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_AlreadySettled_SkipsGateway() {
	ctx := context.Background()
	gatewayRef := "GW-" + uuid.NewString()
	settled := &domain.Payment{GatewayRef: gatewayRef, TenantID: suite.tenantID, Status: domain.PaymentSuccess}

	suite.mockPaymentRepo.On("FindPaymentByReference", ctx, gatewayRef).Return(settled, nil).Once()

	got, err := suite.service.Reconcile(ctx, suite.tenantID, gatewayRef, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, got.Status)
	suite.mockGateway.AssertNotCalled(suite.T(), "FetchStatus")
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
