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

// settlementHandler handles settlement requests for every document kind.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// registerSettlementRoutes registers the settlement endpoint.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)
	rg.POST("/settlements", h.settle)
}

// settle godoc
// @Summary Settle a document
// @Description Approves or rejects a pending document of any kind. The whole settlement applies atomically or not at all.
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   settlement body dto.SettleRequest true "Settlement request"
// @Success 200 {object} dto.SettleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document already settled"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Settlement failed"
// @Security BearerAuth
// @Router /settlements [post]
func (h *settlementHandler) settle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	result, err := h.settlementService.Settle(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		var stockErr *apperrors.InsufficientStockError
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Document has already been settled"})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":     stockErr.Error(),
				"sku":       stockErr.SKU,
				"available": stockErr.Available,
				"requested": stockErr.Requested,
			})
		default:
			logger.Error("Settlement failed in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
