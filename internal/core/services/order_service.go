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

type OrderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
	stockRepo portsrepo.StockRepositoryFacade
}

func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, stockRepo portsrepo.StockRepositoryFacade) *OrderService {
	return &OrderService{orderRepo: orderRepo, stockRepo: stockRepo}
}

// CreateOrder records a new PROCESSING order. Every line's stock item must
// exist in the tenant. Availability is not reserved here: the binding stock
// check happens under row locks when the order settles.
func (s *OrderService) CreateOrder(ctx context.Context, tenantID string, req dto.CreateOrderRequest, userID string) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	orderID := uuid.NewString()
	lines := make([]domain.OrderLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		if !lineReq.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("%w: line unit price must be positive", apperrors.ErrValidation)
		}
		if _, err := s.stockRepo.FindStockItemByID(ctx, tenantID, lineReq.StockItemID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: stock item %s not found", apperrors.ErrValidation, lineReq.StockItemID)
			}
			return nil, err
		}
		lines[i] = domain.OrderLine{
			OrderLineID: uuid.NewString(),
			OrderID:     orderID,
			StockItemID: lineReq.StockItemID,
			Quantity:    lineReq.Quantity,
			UnitPrice:   lineReq.UnitPrice,
		}
	}

	now := time.Now()
	order := domain.Order{
		OrderID:      orderID,
		TenantID:     tenantID,
		OrderNumber:  req.OrderNumber,
		CustomerName: req.CustomerName,
		Status:       domain.OrderProcessing,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	order.TotalAmount = order.ComputeTotal()

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save order in repository", slog.String("error", err.Error()), slog.String("order_id", order.OrderID))
		return nil, err
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID), slog.Int("lines", len(order.Lines)))
	return &order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, tenantID string, orderID string) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.orderRepo.FindOrderByID(ctx, tenantID, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find order in repository", slog.String("error", err.Error()), slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	orders, err := s.orderRepo.ListOrders(ctx, tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list orders from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}
