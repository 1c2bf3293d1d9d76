package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/settleline/bizledger/internal/apperrors"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

// paymentHandler handles the authenticated payment endpoints.
type paymentHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newPaymentHandler(rs portssvc.ReconciliationSvcFacade) *paymentHandler {
	return &paymentHandler{reconciliationService: rs}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newPaymentHandler(reconciliationService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.initiatePayment)
		payments.GET("/:ref", h.getPayment)
		payments.POST("/:ref/reconcile", h.reconcilePayment)
		payments.POST("/:ref/verify", h.verifyPayment)
	}
}

func (h *paymentHandler) respondPaymentError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway unavailable"})
	default:
		logger.Error("Payment operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// initiatePayment godoc
// @Summary Initiate a gateway payment
// @Description Starts a gateway charge funding a pending transaction
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.InitiatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already settled"
// @Failure 502 {object} map[string]string "Payment gateway unavailable"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) initiatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for initiatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	payment, err := h.reconciliationService.InitiatePayment(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		h.respondPaymentError(c, err, "initiate payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment by gateway reference
// @Description Retrieves the local record of a gateway payment
// @Tags payments
// @Produce  json
// @Param   ref path string true "Gateway reference"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{ref} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	payment, err := h.reconciliationService.GetPayment(c.Request.Context(), tenantID, c.Param("ref"))
	if err != nil {
		h.respondPaymentError(c, err, "retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// reconcilePayment godoc
// @Summary Reconcile a payment against the gateway
// @Description Fetches the gateway's current status for the payment and merges it into local state. Returns the stored record unchanged when the gateway is unreachable. Safe to call any number of times.
// @Tags payments
// @Produce  json
// @Param   ref path string true "Gateway reference"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{ref}/reconcile [post]
func (h *paymentHandler) reconcilePayment(c *gin.Context) {
	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	payment, err := h.reconciliationService.Reconcile(c.Request.Context(), tenantID, c.Param("ref"), userID)
	if err != nil {
		h.respondPaymentError(c, err, "reconcile payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// verifyPayment godoc
// @Summary Verify a possibly stuck payment
// @Description Re-checks the payment at the gateway and settles the funded transaction if it succeeded. Falls back to the stored record when the gateway is unreachable.
// @Tags payments
// @Produce  json
// @Param   ref path string true "Gateway reference"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{ref}/verify [post]
func (h *paymentHandler) verifyPayment(c *gin.Context) {
	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	payment, err := h.reconciliationService.VerifyPayment(c.Request.Context(), tenantID, c.Param("ref"), userID)
	if err != nil {
		h.respondPaymentError(c, err, "verify payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
