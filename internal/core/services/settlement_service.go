package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

// SettlementService is the single entry point for settling documents. It
// validates the request and dispatches on the document kind; each branch runs
// as one database transaction inside the settlement repository, so a document
// settles exactly once or not at all.
type SettlementService struct {
	settlementRepo portsrepo.SettlementRepositoryFacade
}

func NewSettlementService(repo portsrepo.SettlementRepositoryFacade) *SettlementService {
	return &SettlementService{settlementRepo: repo}
}

func (s *SettlementService) Settle(ctx context.Context, tenantID string, req dto.SettleRequest, userID string) (*dto.SettleResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, req.Kind)
	}
	if !req.Action.Valid() {
		return nil, fmt.Errorf("%w: unknown settlement action %q", apperrors.ErrValidation, req.Action)
	}

	now := time.Now()
	approve := req.Action == domain.ActionApprove

	var (
		status string
		err    error
	)
	switch req.Kind {
	case domain.KindTransaction:
		var txn *domain.Transaction
		if approve {
			txn, err = s.settlementRepo.ApproveTransaction(ctx, tenantID, req.DocumentID, userID, now)
		} else {
			txn, err = s.settlementRepo.RejectTransaction(ctx, tenantID, req.DocumentID, userID, now)
		}
		if txn != nil {
			status = string(txn.Status)
		}
	case domain.KindOrder:
		var order *domain.Order
		if approve {
			order, err = s.settlementRepo.ApproveOrder(ctx, tenantID, req.DocumentID, userID, now)
		} else {
			order, err = s.settlementRepo.RejectOrder(ctx, tenantID, req.DocumentID, userID, now)
		}
		if order != nil {
			status = string(order.Status)
		}
	case domain.KindPayrollRun:
		var run *domain.PayrollRun
		if approve {
			run, err = s.settlementRepo.ApprovePayrollRun(ctx, tenantID, req.DocumentID, userID, now)
		} else {
			run, err = s.settlementRepo.RejectPayrollRun(ctx, tenantID, req.DocumentID, userID, now)
		}
		if run != nil {
			status = string(run.Status)
		}
	case domain.KindPurchaseOrder:
		var po *domain.PurchaseOrder
		if approve {
			po, err = s.settlementRepo.ApprovePurchaseOrder(ctx, tenantID, req.DocumentID, userID, now)
		} else {
			po, err = s.settlementRepo.RejectPurchaseOrder(ctx, tenantID, req.DocumentID, userID, now)
		}
		if po != nil {
			status = string(po.Status)
		}
	}

	if err != nil {
		logger.Warn("Settlement failed",
			slog.String("kind", string(req.Kind)),
			slog.String("document_id", req.DocumentID),
			slog.String("action", string(req.Action)),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Document settled",
		slog.String("kind", string(req.Kind)),
		slog.String("document_id", req.DocumentID),
		slog.String("action", string(req.Action)),
		slog.String("status", status))

	return &dto.SettleResponse{
		Kind:       req.Kind,
		DocumentID: req.DocumentID,
		Action:     req.Action,
		Status:     status,
	}, nil
}
