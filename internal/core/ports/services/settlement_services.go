package services

import (
	"context"

	"github.com/settleline/bizledger/internal/dto"
)

// SettlementSvcFacade is the single entry point for settling documents.
// Settle validates the request, dispatches on the document kind and runs the
// kind's settlement unit atomically. Errors follow the apperrors contract:
// ErrValidation for an unknown kind or action, ErrNotFound for a missing or
// cross-tenant document, ErrConflict for a document no longer in its pending
// status, *InsufficientStockError when an order cannot be covered.
type SettlementSvcFacade interface {
	Settle(ctx context.Context, tenantID string, req dto.SettleRequest, userID string) (*dto.SettleResponse, error)
}

// ApprovalsSvcFacade aggregates documents awaiting settlement across all
// kinds. A kind whose source fails degrades to unavailable in the summary
// instead of failing the whole feed.
type ApprovalsSvcFacade interface {
	PendingApprovals(ctx context.Context, tenantID string) (*dto.PendingApprovalsResponse, error)
}

