package dto

import (
	"github.com/settleline/bizledger/internal/core/domain"
)

// SettleRequest defines the data needed to settle a business document.
type SettleRequest struct {
	Kind       domain.DocumentKind     `json:"kind" binding:"required,oneof=TRANSACTION ORDER PAYROLL_RUN PURCHASE_ORDER"`
	DocumentID string                  `json:"documentID" binding:"required"`
	Action     domain.SettlementAction `json:"action" binding:"required,oneof=APPROVE REJECT"`
}

// SettleResponse reports the outcome of a settlement.
type SettleResponse struct {
	Kind       domain.DocumentKind     `json:"kind"`
	DocumentID string                  `json:"documentID"`
	Action     domain.SettlementAction `json:"action"`
	Status     string                  `json:"status"`
}
