package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/handlers"
	"github.com/settleline/bizledger/internal/utils"
	"github.com/settleline/bizledger/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) InitiatePayment(ctx context.Context, tenantID string, req dto.InitiatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockReconciliationService) GetPayment(ctx context.Context, tenantID string, gatewayRef string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, gatewayRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockReconciliationService) Reconcile(ctx context.Context, tenantID string, gatewayRef string, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, gatewayRef, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockReconciliationService) HandleWebhook(ctx context.Context, payload dto.WebhookPayload) (*domain.Payment, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockReconciliationService) VerifyPayment(ctx context.Context, tenantID string, gatewayRef string, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, gatewayRef, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Test Suite ---
type WebhookHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockRecon     *MockReconciliationService
	webhookSecret string
}

func (suite *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRecon = new(MockReconciliationService)
	suite.webhookSecret = "whsec_test"

	cfg := &config.Config{
		JWTSecret:     "test-jwt-secret",
		WebhookSecret: suite.webhookSecret,
		IsProduction:  false,
	}
	rate, _ := limiter.NewRateFromFormatted("1000-M")
	webhookLimiter := limiter.New(memory.NewStore(), rate)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Reconciliation: suite.mockRecon,
	}, webhookLimiter)
}

func (suite *WebhookHandlerTestSuite) postWebhook(body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/gateway", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Webhook-Signature", signature)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WebhookHandlerTestSuite) TestWebhook_ValidSignature_Processed() {
	gatewayRef := "GW-" + uuid.NewString()
	body := []byte(`{"reference":"` + gatewayRef + `","status":"success"}`)
	payment := &domain.Payment{GatewayRef: gatewayRef, Status: domain.PaymentSuccess, Amount: decimal.NewFromInt(100)}

	suite.mockRecon.On("HandleWebhook", mock.Anything, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "success"}).
		Return(payment, nil).Once()

	w := suite.postWebhook(body, utils.ComputeSignature(suite.webhookSecret, body))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRecon.AssertExpectations(suite.T())
}

func (suite *WebhookHandlerTestSuite) TestWebhook_InvalidSignature_RejectedBeforeAnyWork() {
	body := []byte(`{"reference":"GW-123","status":"success"}`)

	w := suite.postWebhook(body, "deadbeef")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "HandleWebhook")
}

func (suite *WebhookHandlerTestSuite) TestWebhook_MissingSignature_Rejected() {
	body := []byte(`{"reference":"GW-123","status":"success"}`)

	w := suite.postWebhook(body, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "HandleWebhook")
}

func (suite *WebhookHandlerTestSuite) TestWebhook_UnknownReference_NotFoundForRetry() {
	gatewayRef := "GW-" + uuid.NewString()
	body := []byte(`{"reference":"` + gatewayRef + `","status":"success"}`)

	suite.mockRecon.On("HandleWebhook", mock.Anything, mock.AnythingOfType("dto.WebhookPayload")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postWebhook(body, utils.ComputeSignature(suite.webhookSecret, body))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *WebhookHandlerTestSuite) TestWebhook_MalformedPayload_BadRequest() {
	body := []byte(`{"status":"success"}`) // no reference

	w := suite.postWebhook(body, utils.ComputeSignature(suite.webhookSecret, body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecon.AssertNotCalled(suite.T(), "HandleWebhook")
}

func (suite *WebhookHandlerTestSuite) TestSimulateWebhook_NoSignatureNeededOutsideProduction() {
	gatewayRef := "GW-" + uuid.NewString()
	payment := &domain.Payment{GatewayRef: gatewayRef, Status: domain.PaymentFailed}

	suite.mockRecon.On("HandleWebhook", mock.Anything, dto.WebhookPayload{GatewayRef: gatewayRef, Status: "failed"}).
		Return(payment, nil).Once()

	body := []byte(`{"reference":"` + gatewayRef + `","status":"failed"}`)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/gateway/simulate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRecon.AssertExpectations(suite.T())
}

func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
