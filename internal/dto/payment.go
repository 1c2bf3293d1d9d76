package dto

import (
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InitiatePaymentRequest defines the data needed to start a gateway charge.
type InitiatePaymentRequest struct {
	TransactionID string          `json:"transactionID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency"`
	PhoneNumber   string          `json:"phoneNumber" binding:"required"`
	Provider      string          `json:"provider" binding:"required"`
}

// ReconcilePaymentRequest asks the server to fetch and merge the gateway's
// current status for a payment.
type ReconcilePaymentRequest struct {
	GatewayRef string `json:"gatewayRef" binding:"required"`
}

// WebhookPayload is the gateway's push notification body.
type WebhookPayload struct {
	GatewayRef string            `json:"reference" binding:"required"`
	Status     string            `json:"status" binding:"required"`
	Metadata   map[string]string `json:"metadata"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	GatewayRef    string               `json:"gatewayRef"`
	TransactionID *string              `json:"transactionID,omitempty"`
	Amount        decimal.Decimal      `json:"amount"`
	Currency      string               `json:"currency"`
	Status        domain.PaymentStatus `json:"status"`
	Metadata      map[string]string    `json:"metadata,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		GatewayRef:    p.GatewayRef,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		Metadata:      p.Metadata,
		CreatedAt:     p.CreatedAt,
	}
}
