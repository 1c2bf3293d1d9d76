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

// stockHandler handles HTTP requests related to stock items.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers routes related to stock items.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock-items")
	{
		stock.POST("", h.createStockItem)
		stock.GET("/:id", h.getStockItem)
		stock.GET("", h.listStockItems)
	}
}

// createStockItem godoc
// @Summary Create a new stock item
// @Description Creates a new stock item in the caller's tenant
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateStockItemRequest true "Stock item details"
// @Success 201 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "SKU already exists"
// @Failure 500 {object} map[string]string "Failed to create stock item"
// @Security BearerAuth
// @Router /stock-items [post]
func (h *stockHandler) createStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	item, err := h.stockService.CreateStockItem(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create stock item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockItemResponse(item))
}

// getStockItem godoc
// @Summary Get a stock item by ID
// @Description Retrieves details for a specific stock item
// @Tags stock
// @Produce  json
// @Param   id path string true "Stock item ID"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} map[string]string "Stock item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve stock item"
// @Security BearerAuth
// @Router /stock-items/{id} [get]
func (h *stockHandler) getStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := identityFromContext(c)
	if !ok {
		return
	}

	item, err := h.stockService.GetStockItemByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to get stock item from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stock item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

// listStockItems godoc
// @Summary List stock items
// @Description Retrieves a paginated list of the tenant's stock items
// @Tags stock
// @Produce  json
// @Param   limit query int false "Max items to return" default(20)
// @Param   offset query int false "Items to skip" default(0)
// @Success 200 {array} dto.StockItemResponse
// @Failure 500 {object} map[string]string "Failed to list stock items"
// @Security BearerAuth
// @Router /stock-items [get]
func (h *stockHandler) listStockItems(c *gin.Context) {
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

	items, err := h.stockService.ListStockItems(c.Request.Context(), tenantID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list stock items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockItemResponse(items))
}
