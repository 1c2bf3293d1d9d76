package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/settleline/bizledger/internal/apperrors"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
	"github.com/settleline/bizledger/internal/utils"
)

// signatureHeader carries the gateway's HMAC of the raw request body.
const signatureHeader = "X-Webhook-Signature"

// webhookHandler ingests gateway push notifications. The route is public:
// authenticity comes from the HMAC signature, not from a user token.
type webhookHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
	webhookSecret         string
}

func newWebhookHandler(rs portssvc.ReconciliationSvcFacade, webhookSecret string) *webhookHandler {
	return &webhookHandler{reconciliationService: rs, webhookSecret: webhookSecret}
}

// registerWebhookRoutes registers the public webhook endpoint. In non
// production a simulate endpoint is also exposed so the payment flow can be
// driven without a real gateway.
func registerWebhookRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade, webhookSecret string, isProduction bool) {
	h := newWebhookHandler(reconciliationService, webhookSecret)

	rg.POST("/gateway", h.handleGatewayWebhook)
	if !isProduction {
		rg.POST("/gateway/simulate", h.simulateGatewayWebhook)
	}
}

// handleGatewayWebhook godoc
// @Summary Gateway webhook
// @Description Ingests a payment outcome notification from the gateway. The signature is verified against the raw body before anything is touched; duplicated or re-ordered deliveries are safe.
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Param   X-Webhook-Signature header string true "Hex HMAC-SHA256 of the raw body"
// @Param   payload body dto.WebhookPayload true "Notification payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Malformed payload"
// @Failure 401 {object} map[string]string "Invalid signature"
// @Failure 404 {object} map[string]string "Unknown payment reference"
// @Router /webhooks/gateway [post]
func (h *webhookHandler) handleGatewayWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	// Nothing is looked up, let alone written, before this check passes.
	if !utils.VerifySignature(h.webhookSecret, body, c.GetHeader(signatureHeader)) {
		logger.Warn("Webhook signature verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var payload dto.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.GatewayRef == "" || payload.Status == "" {
		logger.Warn("Malformed webhook payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed payload"})
		return
	}

	h.process(c, payload)
}

// simulateGatewayWebhook accepts an unsigned payload. It exists only outside
// production, for exercising the reconciliation path end to end.
func (h *webhookHandler) simulateGatewayWebhook(c *gin.Context) {
	var payload dto.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.process(c, payload)
}

func (h *webhookHandler) process(c *gin.Context, payload dto.WebhookPayload) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payment, err := h.reconciliationService.HandleWebhook(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The gateway retries on non-2xx; by the next delivery the
			// payment record should exist.
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown payment reference"})
			return
		}
		logger.Error("Failed to process webhook", slog.String("error", err.Error()), slog.String("gateway_ref", payload.GatewayRef))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(payment.Status)})
}
