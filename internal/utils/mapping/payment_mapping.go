package mapping

import (
	"encoding/json"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment, marshalling
// the metadata map into the jsonb column representation.
func ToModelPayment(d domain.Payment) (models.Payment, error) {
	metadata, err := json.Marshal(d.Metadata)
	if err != nil {
		return models.Payment{}, err
	}
	if d.Metadata == nil {
		metadata = []byte("{}")
	}
	return models.Payment{
		PaymentID:     d.PaymentID,
		GatewayRef:    d.GatewayRef,
		TenantID:      d.TenantID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		Status:        models.PaymentStatus(d.Status),
		Metadata:      metadata,
		TransactionID: d.TransactionID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) (domain.Payment, error) {
	var metadata map[string]string
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return domain.Payment{}, err
		}
	}
	return domain.Payment{
		PaymentID:     m.PaymentID,
		GatewayRef:    m.GatewayRef,
		TenantID:      m.TenantID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        domain.PaymentStatus(m.Status),
		Metadata:      metadata,
		TransactionID: m.TransactionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}
