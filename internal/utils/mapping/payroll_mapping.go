package mapping

import (
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
)

// ToModelPayrollRun converts a domain PayrollRun to a model PayrollRun
func ToModelPayrollRun(d domain.PayrollRun) models.PayrollRun {
	return models.PayrollRun{
		PayrollRunID: d.PayrollRunID,
		TenantID:     d.TenantID,
		Period:       d.Period,
		Amount:       d.Amount,
		Status:       models.PayrollStatus(d.Status),
		PaymentDate:  d.PaymentDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayrollRun converts a model PayrollRun to a domain PayrollRun
func ToDomainPayrollRun(m models.PayrollRun) domain.PayrollRun {
	return domain.PayrollRun{
		PayrollRunID: m.PayrollRunID,
		TenantID:     m.TenantID,
		Period:       m.Period,
		Amount:       m.Amount,
		Status:       domain.PayrollStatus(m.Status),
		PaymentDate:  m.PaymentDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PurchaseOrderID: d.PurchaseOrderID,
		TenantID:        d.TenantID,
		OrderNumber:     d.OrderNumber,
		SupplierName:    d.SupplierName,
		Amount:          d.Amount,
		Status:          models.PurchaseOrderStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PurchaseOrderID: m.PurchaseOrderID,
		TenantID:        m.TenantID,
		OrderNumber:     m.OrderNumber,
		SupplierName:    m.SupplierName,
		Amount:          m.Amount,
		Status:          domain.PurchaseOrderStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
