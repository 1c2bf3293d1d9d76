package services

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/shopspring/decimal"
)

// GatewayCharge is the gateway's view of one charge.
type GatewayCharge struct {
	Reference string
	Status    string
	Metadata  map[string]string
}

// GatewayClient talks to the external payment gateway.
type GatewayClient interface {
	// CreateCharge asks the gateway to start a charge and returns its reference.
	CreateCharge(ctx context.Context, amount decimal.Decimal, currency string, phoneNumber string, provider string) (*GatewayCharge, error)

	// FetchStatus retrieves the gateway's current view of a charge.
	FetchStatus(ctx context.Context, reference string) (*GatewayCharge, error)
}

// ReconciliationSvcFacade owns the payment lifecycle against the gateway.
// Every ingestion path (webhook, poll, manual verify) funnels into the same
// idempotent merge: a payment already SUCCESS is never changed again, and the
// funded transaction settles at most once no matter how many notifications
// arrive.
type ReconciliationSvcFacade interface {
	// InitiatePayment starts a gateway charge for a pending transaction and
	// records the payment keyed by the returned reference.
	InitiatePayment(ctx context.Context, tenantID string, req dto.InitiatePaymentRequest, userID string) (*domain.Payment, error)

	// GetPayment retrieves a payment by gateway reference, tenant-checked.
	GetPayment(ctx context.Context, tenantID string, gatewayRef string) (*domain.Payment, error)

	// Reconcile fetches the gateway's current status for the reference and
	// merges it into local state.
	Reconcile(ctx context.Context, tenantID string, gatewayRef string, userID string) (*domain.Payment, error)

	// HandleWebhook ingests a gateway push notification. The caller has
	// already verified the signature.
	HandleWebhook(ctx context.Context, payload dto.WebhookPayload) (*domain.Payment, error)

	// VerifyPayment re-checks a payment the user believes is stuck.
	VerifyPayment(ctx context.Context, tenantID string, gatewayRef string, userID string) (*domain.Payment, error)
}
