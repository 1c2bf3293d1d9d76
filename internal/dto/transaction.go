package dto

import (
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a pending transaction.
type CreateTransactionRequest struct {
	Description   string                 `json:"description" binding:"required"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	Kind          domain.TransactionKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Category      string                 `json:"category"`
	EffectiveDate time.Time              `json:"effectiveDate" binding:"required"`
	AccountID     *string                `json:"accountID"` // Optional, nullable until an account is chosen
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	Kind          domain.TransactionKind   `json:"kind"`
	Category      string                   `json:"category,omitempty"`
	EffectiveDate time.Time                `json:"effectiveDate"`
	AccountID     *string                  `json:"accountID,omitempty"`
	Status        domain.TransactionStatus `json:"status"`
	GatewayRef    *string                  `json:"gatewayRef,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		Category:      txn.Category,
		EffectiveDate: txn.EffectiveDate,
		AccountID:     txn.AccountID,
		Status:        txn.Status,
		GatewayRef:    txn.GatewayRef,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Status    *domain.TransactionStatus `form:"status"`
	Limit     int                       `form:"limit,default=20"`
	NextToken *string                   `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions with the next cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
