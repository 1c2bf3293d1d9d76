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

// orderHandler handles HTTP requests related to sales orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/:id", h.getOrder)
		orders.GET("", h.listOrders)
	}
}

// createOrder godoc
// @Summary Create a new sales order
// @Description Creates a PROCESSING order with its lines; stock is only decremented at settlement
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// getOrder godoc
// @Summary Get an order by ID
// @Description Retrieves an order with its lines
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			logger.Error("Failed to get order from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Description Retrieves a paginated list of the tenant's orders
// @Tags orders
// @Produce  json
// @Param   limit query int false "Max items to return" default(20)
// @Param   offset query int false "Items to skip" default(0)
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
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

	orders, err := h.orderService.ListOrders(c.Request.Context(), tenantID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}
