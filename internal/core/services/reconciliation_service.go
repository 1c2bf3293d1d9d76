package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

const defaultCurrency = "KES"

// ReconciliationService owns the payment lifecycle against the external
// gateway. Every ingestion path (webhook, poll, manual verify) funnels into
// the same merge in applyOutcome, so notifications can arrive duplicated, out
// of order, or concurrently without the funded transaction settling twice.
type ReconciliationService struct {
	paymentRepo    portsrepo.PaymentRepositoryFacade
	txnRepo        portsrepo.TransactionRepositoryFacade
	settlementRepo portsrepo.SettlementRepositoryFacade
	gateway        portssvc.GatewayClient
	demoMode       bool
}

func NewReconciliationService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	settlementRepo portsrepo.SettlementRepositoryFacade,
	gateway portssvc.GatewayClient,
	demoMode bool,
) *ReconciliationService {
	return &ReconciliationService{
		paymentRepo:    paymentRepo,
		txnRepo:        txnRepo,
		settlementRepo: settlementRepo,
		gateway:        gateway,
		demoMode:       demoMode,
	}
}

// InitiatePayment starts a gateway charge for a pending transaction and
// records the payment keyed by the gateway's reference. In demo mode a
// gateway outage falls back to a locally generated reference so the flow can
// be exercised end to end without the upstream.
func (s *ReconciliationService) InitiatePayment(ctx context.Context, tenantID string, req dto.InitiatePaymentRequest, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, tenantID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.TransactionPending {
		return nil, fmt.Errorf("%w: transaction %s is already %s", apperrors.ErrConflict, txn.TransactionID, txn.Status)
	}
	if !req.Amount.Equal(txn.Amount) {
		return nil, fmt.Errorf("%w: amount does not match transaction amount", apperrors.ErrValidation)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var gatewayRef string
	charge, err := s.gateway.CreateCharge(ctx, req.Amount, currency, req.PhoneNumber, req.Provider)
	switch {
	case err == nil:
		gatewayRef = charge.Reference
	case s.demoMode && errors.Is(err, apperrors.ErrUpstreamUnavailable):
		gatewayRef = "LOCAL-" + uuid.NewString()
		logger.Warn("Gateway unavailable, issuing local reference",
			slog.String("gateway_ref", gatewayRef),
			slog.String("transaction_id", txn.TransactionID))
	default:
		logger.Error("Gateway charge failed", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:  uuid.NewString(),
		GatewayRef: gatewayRef,
		TenantID:   tenantID,
		UserID:     userID,
		Amount:     req.Amount,
		Currency:   currency,
		Status:     domain.PaymentPending,
		Metadata: map[string]string{
			"provider":    req.Provider,
			"phoneNumber": req.PhoneNumber,
		},
		TransactionID: &txn.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment in repository", slog.String("error", err.Error()), slog.String("gateway_ref", gatewayRef))
		return nil, err
	}
	if err := s.txnRepo.AttachGatewayRef(ctx, tenantID, txn.TransactionID, gatewayRef); err != nil {
		logger.Error("Failed to attach gateway ref to transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	logger.Info("Payment initiated",
		slog.String("gateway_ref", gatewayRef),
		slog.String("transaction_id", txn.TransactionID))
	return &payment, nil
}

func (s *ReconciliationService) GetPayment(ctx context.Context, tenantID string, gatewayRef string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByReference(ctx, gatewayRef)
	if err != nil {
		return nil, err
	}
	if payment.TenantID != tenantID {
		// Cross-tenant references look identical to missing ones.
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, gatewayRef)
	}
	return payment, nil
}

// Reconcile fetches the gateway's current status for the reference and merges
// it into local state.
func (s *ReconciliationService) Reconcile(ctx context.Context, tenantID string, gatewayRef string, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.GetPayment(ctx, tenantID, gatewayRef)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentSuccess {
		// Already settled; nothing the gateway says can change it. Re-drive
		// the linked transaction's approval in case an earlier attempt died
		// between the payment update and the settlement.
		if err := s.ensureSettled(ctx, payment); err != nil {
			return nil, err
		}
		return payment, nil
	}

	charge, err := s.gateway.FetchStatus(ctx, gatewayRef)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			// The gateway is down; hand back the stored record unchanged so
			// the caller can verify manually and retry once it recovers.
			logger.Warn("Gateway unavailable, returning stored payment",
				slog.String("gateway_ref", gatewayRef))
			return payment, nil
		}
		logger.Error("Gateway status fetch failed", slog.String("error", err.Error()), slog.String("gateway_ref", gatewayRef))
		return nil, err
	}

	return s.applyOutcome(ctx, payment, charge.Status, charge.Metadata)
}

// HandleWebhook ingests a gateway push notification. Signature verification
// has already happened at the edge; an unknown reference is reported as not
// found so the gateway retries later, after InitiatePayment has landed.
func (s *ReconciliationService) HandleWebhook(ctx context.Context, payload dto.WebhookPayload) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByReference(ctx, payload.GatewayRef)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentSuccess {
		if err := s.ensureSettled(ctx, payment); err != nil {
			return nil, err
		}
		return payment, nil
	}
	return s.applyOutcome(ctx, payment, payload.Status, payload.Metadata)
}

// ensureSettled re-drives the approval of the transaction funded by an
// already-successful payment. The settlement repository's conditional
// transition makes the normal, already-settled case a conflict no-op; the
// call exists so a crash between the payment update and the settlement
// cannot leave the funded transaction stuck in pending.
func (s *ReconciliationService) ensureSettled(ctx context.Context, payment *domain.Payment) error {
	if payment.TransactionID == nil {
		return nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	_, err := s.settlementRepo.ApproveTransaction(ctx, payment.TenantID, *payment.TransactionID, payment.UserID, time.Now())
	switch {
	case err == nil:
		logger.Info("Settled transaction left pending by an earlier notification",
			slog.String("gateway_ref", payment.GatewayRef),
			slog.String("transaction_id", *payment.TransactionID))
	case errors.Is(err, apperrors.ErrConflict):
		return nil
	default:
		return err
	}
	return nil
}

// VerifyPayment re-checks a payment the user believes is stuck. It is the
// same merge as Reconcile; the separate name exists for the API surface.
func (s *ReconciliationService) VerifyPayment(ctx context.Context, tenantID string, gatewayRef string, userID string) (*domain.Payment, error) {
	return s.Reconcile(ctx, tenantID, gatewayRef, userID)
}

// applyOutcome merges one gateway-reported outcome into local state. The
// payment row is advanced with a conditional update that refuses to touch an
// already-successful payment, and the funded transaction is settled through
// the settlement repository, whose own conditional transition makes the
// second settler a no-op. Between the two, at-least-once delivery collapses
// to exactly-once effect.
func (s *ReconciliationService) applyOutcome(ctx context.Context, payment *domain.Payment, gatewayStatus string, metadata map[string]string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := normalizeGatewayStatus(gatewayStatus)
	if status == domain.PaymentPending {
		// Nothing conclusive yet; leave local state alone.
		return payment, nil
	}

	now := time.Now()
	updated, err := s.paymentRepo.UpdatePaymentStatusIfUnsettled(ctx, payment.GatewayRef, status, metadata, now)
	if err != nil {
		logger.Error("Failed to update payment status", slog.String("error", err.Error()), slog.String("gateway_ref", payment.GatewayRef))
		return nil, err
	}
	if !updated {
		// Lost the race to another notification; the stored record is final.
		return s.paymentRepo.FindPaymentByReference(ctx, payment.GatewayRef)
	}

	if status == domain.PaymentSuccess && payment.TransactionID != nil {
		_, err := s.settlementRepo.ApproveTransaction(ctx, payment.TenantID, *payment.TransactionID, payment.UserID, now)
		switch {
		case err == nil:
			logger.Info("Transaction settled by payment",
				slog.String("gateway_ref", payment.GatewayRef),
				slog.String("transaction_id", *payment.TransactionID))
		case errors.Is(err, apperrors.ErrConflict):
			// Already settled by an earlier notification or a manual approval.
			logger.Debug("Transaction already settled",
				slog.String("transaction_id", *payment.TransactionID))
		default:
			logger.Error("Failed to settle transaction for successful payment",
				slog.String("error", err.Error()),
				slog.String("gateway_ref", payment.GatewayRef),
				slog.String("transaction_id", *payment.TransactionID))
			return nil, err
		}
	}

	if status == domain.PaymentFailed {
		// The transaction stays PENDING; the user can retry with a new charge.
		logger.Info("Payment failed at gateway",
			slog.String("gateway_ref", payment.GatewayRef))
	}

	return s.paymentRepo.FindPaymentByReference(ctx, payment.GatewayRef)
}

// normalizeGatewayStatus maps the gateway's status vocabulary onto the local
// payment lifecycle. Anything unrecognized is treated as still pending.
func normalizeGatewayStatus(status string) domain.PaymentStatus {
	switch strings.ToLower(status) {
	case "success", "successful", "completed", "paid":
		return domain.PaymentSuccess
	case "failed", "failure", "cancelled", "declined":
		return domain.PaymentFailed
	default:
		return domain.PaymentPending
	}
}
