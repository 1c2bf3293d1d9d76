package repositories

import (
	"context"
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
)

// PaymentRepositoryFacade persists gateway payments. References are globally
// unique, so payment lookups are by reference rather than tenant + id; the
// tenant stored on the payment scopes everything downstream.
type PaymentRepositoryFacade interface {
	// SavePayment persists a new payment record.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// FindPaymentByReference retrieves a payment by its gateway reference.
	FindPaymentByReference(ctx context.Context, gatewayRef string) (*domain.Payment, error)

	// UpdatePaymentStatusIfUnsettled updates status and metadata only while the
	// stored status is not yet SUCCESS. Returns false when the conditional
	// update matched no row because the payment was already settled; the race
	// loser must re-read and treat the stored record as final.
	UpdatePaymentStatusIfUnsettled(ctx context.Context, gatewayRef string, status domain.PaymentStatus, metadata map[string]string, now time.Time) (bool, error)
}
