package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/settleline/bizledger/internal/core/domain"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

// ApprovalsService aggregates documents awaiting settlement across all kinds.
// The kinds are fetched concurrently and a kind whose source fails degrades
// to "unavailable" in the summary; the feed never fails as a whole because
// one source did.
type ApprovalsService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	orderRepo   portsrepo.OrderRepositoryFacade
	payrollRepo portsrepo.PayrollRunRepositoryFacade
	poRepo      portsrepo.PurchaseOrderRepositoryFacade
}

func NewApprovalsService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
	payrollRepo portsrepo.PayrollRunRepositoryFacade,
	poRepo portsrepo.PurchaseOrderRepositoryFacade,
) *ApprovalsService {
	return &ApprovalsService{
		txnRepo:     txnRepo,
		orderRepo:   orderRepo,
		payrollRepo: payrollRepo,
		poRepo:      poRepo,
	}
}

type kindResult struct {
	kind      domain.DocumentKind
	approvals []domain.PendingApproval
	err       error
}

func (s *ApprovalsService) PendingApprovals(ctx context.Context, tenantID string) (*dto.PendingApprovalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kinds := domain.AllDocumentKinds()
	results := make([]kindResult, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind domain.DocumentKind) {
			defer wg.Done()
			approvals, err := s.listPendingForKind(ctx, tenantID, kind)
			results[i] = kindResult{kind: kind, approvals: approvals, err: err}
		}(i, kind)
	}
	wg.Wait()

	var merged []domain.PendingApproval
	summary := make([]dto.KindSummary, 0, len(kinds))
	partial := false
	for _, res := range results {
		if res.err != nil {
			logger.Warn("Pending approvals source unavailable",
				slog.String("kind", string(res.kind)),
				slog.String("error", res.err.Error()))
			summary = append(summary, dto.KindSummary{Kind: res.kind, Count: 0, Available: false})
			partial = true
			continue
		}
		merged = append(merged, res.approvals...)
		summary = append(summary, dto.KindSummary{Kind: res.kind, Count: len(res.approvals), Available: true})
	}

	// Newest first; ID breaks ties so the order is stable across calls.
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		return merged[i].ID < merged[j].ID
	})

	return &dto.PendingApprovalsResponse{
		Approvals: dto.ToListPendingApprovalResponse(merged),
		Summary:   summary,
		Partial:   partial,
	}, nil
}

func (s *ApprovalsService) listPendingForKind(ctx context.Context, tenantID string, kind domain.DocumentKind) ([]domain.PendingApproval, error) {
	switch kind {
	case domain.KindTransaction:
		txns, err := s.txnRepo.ListPendingTransactions(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		approvals := make([]domain.PendingApproval, len(txns))
		for i, txn := range txns {
			details := map[string]string{"kind": string(txn.Kind)}
			if txn.Category != "" {
				details["category"] = txn.Category
			}
			approvals[i] = domain.PendingApproval{
				ID:      txn.TransactionID,
				Kind:    domain.KindTransaction,
				Title:   txn.Description,
				Amount:  txn.Amount,
				Status:  string(txn.Status),
				Date:    txn.EffectiveDate,
				Details: details,
			}
		}
		return approvals, nil

	case domain.KindOrder:
		orders, err := s.orderRepo.ListProcessingOrders(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		approvals := make([]domain.PendingApproval, len(orders))
		for i, order := range orders {
			approvals[i] = domain.PendingApproval{
				ID:     order.OrderID,
				Kind:   domain.KindOrder,
				Title:  "Order " + order.OrderNumber,
				Amount: order.TotalAmount,
				Status: string(order.Status),
				Date:   order.CreatedAt,
				Details: map[string]string{
					"customerName": order.CustomerName,
				},
			}
		}
		return approvals, nil

	case domain.KindPayrollRun:
		runs, err := s.payrollRepo.ListPendingPayrollRuns(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		approvals := make([]domain.PendingApproval, len(runs))
		for i, run := range runs {
			approvals[i] = domain.PendingApproval{
				ID:     run.PayrollRunID,
				Kind:   domain.KindPayrollRun,
				Title:  "Payroll " + run.Period,
				Amount: run.Amount,
				Status: string(run.Status),
				Date:   run.CreatedAt,
			}
		}
		return approvals, nil

	case domain.KindPurchaseOrder:
		pos, err := s.poRepo.ListPendingPurchaseOrders(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		approvals := make([]domain.PendingApproval, len(pos))
		for i, po := range pos {
			approvals[i] = domain.PendingApproval{
				ID:     po.PurchaseOrderID,
				Kind:   domain.KindPurchaseOrder,
				Title:  "PO " + po.OrderNumber,
				Amount: po.Amount,
				Status: string(po.Status),
				Date:   po.CreatedAt,
				Details: map[string]string{
					"supplierName": po.SupplierName,
				},
			}
		}
		return approvals, nil
	}

	return nil, nil
}
