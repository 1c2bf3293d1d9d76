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

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	purchaseOrderService portssvc.PurchaseOrderSvcFacade
}

func newPurchaseOrderHandler(ps portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{purchaseOrderService: ps}
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, purchaseOrderService portssvc.PurchaseOrderSvcFacade) {
	h := newPurchaseOrderHandler(purchaseOrderService)

	pos := rg.Group("/purchase-orders")
	{
		pos.POST("", h.createPurchaseOrder)
		pos.GET("/:id", h.getPurchaseOrder)
		pos.GET("", h.listPurchaseOrders)
	}
}

// createPurchaseOrder godoc
// @Summary Create a new purchase order
// @Description Creates a PENDING purchase order
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create purchase order"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPurchaseOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	po, err := h.purchaseOrderService.CreatePurchaseOrder(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create purchase order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(po))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Description Retrieves details for a specific purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve purchase order"
// @Security BearerAuth
// @Router /purchase-orders/{id} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	po, err := h.purchaseOrderService.GetPurchaseOrderByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		} else {
			logger.Error("Failed to get purchase order from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve purchase order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Description Retrieves a paginated list of the tenant's purchase orders
// @Tags purchase-orders
// @Produce  json
// @Param   limit query int false "Max items to return" default(20)
// @Param   offset query int false "Items to skip" default(0)
// @Success 200 {array} dto.PurchaseOrderResponse
// @Failure 500 {object} map[string]string "Failed to list purchase orders"
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	pos, err := h.purchaseOrderService.ListPurchaseOrders(c.Request.Context(), tenantID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list purchase orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchase orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseOrderResponse(pos))
}
