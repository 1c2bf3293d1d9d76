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

type PurchaseOrderService struct {
	poRepo portsrepo.PurchaseOrderRepositoryFacade
}

func NewPurchaseOrderService(repo portsrepo.PurchaseOrderRepositoryFacade) *PurchaseOrderService {
	return &PurchaseOrderService{poRepo: repo}
}

func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, tenantID string, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	po := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		TenantID:        tenantID,
		OrderNumber:     req.OrderNumber,
		SupplierName:    req.SupplierName,
		Amount:          req.Amount,
		Status:          domain.PurchaseOrderPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.poRepo.SavePurchaseOrder(ctx, po); err != nil {
		logger.Error("Failed to save purchase order in repository", slog.String("error", err.Error()), slog.String("purchase_order_id", po.PurchaseOrderID))
		return nil, err
	}

	logger.Info("Purchase order created", slog.String("purchase_order_id", po.PurchaseOrderID))
	return &po, nil
}

func (s *PurchaseOrderService) GetPurchaseOrderByID(ctx context.Context, tenantID string, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	po, err := s.poRepo.FindPurchaseOrderByID(ctx, tenantID, purchaseOrderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find purchase order in repository", slog.String("error", err.Error()), slog.String("purchase_order_id", purchaseOrderID))
		}
		return nil, err
	}
	return po, nil
}

func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	pos, err := s.poRepo.ListPurchaseOrders(ctx, tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list purchase orders from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	if pos == nil {
		return []domain.PurchaseOrder{}, nil
	}
	return pos, nil
}
