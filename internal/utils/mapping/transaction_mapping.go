package mapping

import (
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		TenantID:      d.TenantID,
		Description:   d.Description,
		Amount:        d.Amount,
		Kind:          models.TransactionKind(d.Kind),
		Category:      d.Category,
		EffectiveDate: d.EffectiveDate,
		AccountID:     d.AccountID,
		Status:        models.TransactionStatus(d.Status),
		GatewayRef:    d.GatewayRef,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		TenantID:      m.TenantID,
		Description:   m.Description,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		Category:      m.Category,
		EffectiveDate: m.EffectiveDate,
		AccountID:     m.AccountID,
		Status:        domain.TransactionStatus(m.Status),
		GatewayRef:    m.GatewayRef,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
