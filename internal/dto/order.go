package dto

import (
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderLineRequest is one requested stock position on a new order.
type CreateOrderLineRequest struct {
	StockItemID string          `json:"stockItemID" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateOrderRequest defines the data needed to create a sales order.
type CreateOrderRequest struct {
	OrderNumber  string                   `json:"orderNumber" binding:"required"`
	CustomerName string                   `json:"customerName" binding:"required"`
	Lines        []CreateOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// OrderLineResponse defines the data returned for an order line.
type OrderLineResponse struct {
	OrderLineID string          `json:"orderLineID"`
	StockItemID string          `json:"stockItemID"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID      string              `json:"orderID"`
	OrderNumber  string              `json:"orderNumber"`
	CustomerName string              `json:"customerName"`
	Status       domain.OrderStatus  `json:"status"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	Lines        []OrderLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	CreatedBy    string              `json:"createdBy"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(order *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineResponse{
			OrderLineID: line.OrderLineID,
			StockItemID: line.StockItemID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		}
	}
	return OrderResponse{
		OrderID:      order.OrderID,
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Lines:        lines,
		CreatedAt:    order.CreatedAt,
		CreatedBy:    order.CreatedBy,
	}
}

// ToListOrderResponse converts a slice of domain.Order to DTOs.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, order := range orders {
		res[i] = ToOrderResponse(&order)
	}
	return res
}
