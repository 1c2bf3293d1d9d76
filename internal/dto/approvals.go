package dto

import (
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PendingApprovalResponse is one document awaiting settlement, normalized
// across document kinds.
type PendingApprovalResponse struct {
	ID      string              `json:"id"`
	Kind    domain.DocumentKind `json:"kind"`
	Title   string              `json:"title"`
	Amount  decimal.Decimal     `json:"amount"`
	Status  string              `json:"status"`
	Date    time.Time           `json:"date"`
	Details map[string]string   `json:"details,omitempty"`
}

// KindSummary reports one document kind's contribution to the pending list.
type KindSummary struct {
	Kind      domain.DocumentKind `json:"kind"`
	Count     int                 `json:"count"`
	Available bool                `json:"available"`
}

// PendingApprovalsResponse is the merged pending-approvals feed. Kinds whose
// source failed are reported as unavailable rather than failing the whole
// response.
type PendingApprovalsResponse struct {
	Approvals []PendingApprovalResponse `json:"approvals"`
	Summary   []KindSummary             `json:"summary"`
	Partial   bool                      `json:"partial"`
}

// ToPendingApprovalResponse converts a domain.PendingApproval to its DTO.
func ToPendingApprovalResponse(pa *domain.PendingApproval) PendingApprovalResponse {
	return PendingApprovalResponse{
		ID:      pa.ID,
		Kind:    pa.Kind,
		Title:   pa.Title,
		Amount:  pa.Amount,
		Status:  pa.Status,
		Date:    pa.Date,
		Details: pa.Details,
	}
}

// ToListPendingApprovalResponse converts a slice of domain.PendingApproval to DTOs.
func ToListPendingApprovalResponse(pas []domain.PendingApproval) []PendingApprovalResponse {
	res := make([]PendingApprovalResponse, len(pas))
	for i, pa := range pas {
		res[i] = ToPendingApprovalResponse(&pa)
	}
	return res
}
