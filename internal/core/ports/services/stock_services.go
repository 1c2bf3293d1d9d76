package services

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/dto"
)

// StockReaderSvc defines read operations for stock data
type StockReaderSvc interface {
	// GetStockItemByID retrieves a specific stock item by its unique identifier.
	GetStockItemByID(ctx context.Context, tenantID string, stockItemID string) (*domain.StockItem, error)

	// ListStockItems retrieves a paginated list of stock items for a given tenant.
	ListStockItems(ctx context.Context, tenantID string, limit int, offset int) ([]domain.StockItem, error)
}

// StockWriterSvc defines write operations for stock data
type StockWriterSvc interface {
	// CreateStockItem persists a new stock item.
	CreateStockItem(ctx context.Context, tenantID string, req dto.CreateStockItemRequest, userID string) (*domain.StockItem, error)
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
