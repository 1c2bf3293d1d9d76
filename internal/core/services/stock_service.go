package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

type StockService struct {
	stockRepo portsrepo.StockRepositoryFacade
}

func NewStockService(repo portsrepo.StockRepositoryFacade) *StockService {
	return &StockService{stockRepo: repo}
}

func (s *StockService) CreateStockItem(ctx context.Context, tenantID string, req dto.CreateStockItemRequest, userID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// SKU is unique per tenant; reject early with a clear error instead of
	// surfacing the constraint violation.
	existing, err := s.stockRepo.FindStockItemBySKU(ctx, tenantID, req.SKU)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check SKU uniqueness", slog.String("error", err.Error()), slog.String("sku", req.SKU))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: stock item with SKU %s already exists", apperrors.ErrDuplicate, req.SKU)
	}

	now := time.Now()
	item := domain.StockItem{
		StockItemID:  uuid.NewString(),
		TenantID:     tenantID,
		SKU:          req.SKU,
		Name:         req.Name,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.stockRepo.SaveStockItem(ctx, item); err != nil {
		logger.Error("Failed to save stock item in repository", slog.String("error", err.Error()), slog.String("stock_item_id", item.StockItemID))
		return nil, err
	}

	logger.Info("Stock item created", slog.String("stock_item_id", item.StockItemID), slog.String("sku", item.SKU))
	return &item, nil
}

func (s *StockService) GetStockItemByID(ctx context.Context, tenantID string, stockItemID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	item, err := s.stockRepo.FindStockItemByID(ctx, tenantID, stockItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find stock item in repository", slog.String("error", err.Error()), slog.String("stock_item_id", stockItemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *StockService) ListStockItems(ctx context.Context, tenantID string, limit int, offset int) ([]domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	items, err := s.stockRepo.ListStockItems(ctx, tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list stock items from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	if items == nil {
		return []domain.StockItem{}, nil
	}
	return items, nil
}
