package dto

import (
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockItemRequest defines the data needed to create a stock item.
type CreateStockItemRequest struct {
	SKU          string          `json:"sku" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Quantity     int64           `json:"quantity" binding:"gte=0"`
	ReorderLevel int64           `json:"reorderLevel" binding:"gte=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice" binding:"required"`
}

// StockItemResponse defines the data returned for a stock item.
type StockItemResponse struct {
	StockItemID  string          `json:"stockItemID"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorderLevel"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	NeedsReorder bool            `json:"needsReorder"`
}

// ToStockItemResponse converts a domain.StockItem to StockItemResponse DTO.
func ToStockItemResponse(item *domain.StockItem) StockItemResponse {
	return StockItemResponse{
		StockItemID:  item.StockItemID,
		SKU:          item.SKU,
		Name:         item.Name,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		UnitPrice:    item.UnitPrice,
		NeedsReorder: item.NeedsReorder(),
	}
}

// ToListStockItemResponse converts a slice of domain.StockItem to DTOs.
func ToListStockItemResponse(items []domain.StockItem) []StockItemResponse {
	res := make([]StockItemResponse, len(items))
	for i, item := range items {
		res[i] = ToStockItemResponse(&item)
	}
	return res
}
