package mapping

import (
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
)

// ToModelOrder converts a domain Order to a model Order (lines mapped separately)
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:      d.OrderID,
		TenantID:     d.TenantID,
		OrderNumber:  d.OrderNumber,
		CustomerName: d.CustomerName,
		Status:       models.OrderStatus(d.Status),
		TotalAmount:  d.TotalAmount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order (without lines)
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:      m.OrderID,
		TenantID:     m.TenantID,
		OrderNumber:  m.OrderNumber,
		CustomerName: m.CustomerName,
		Status:       domain.OrderStatus(m.Status),
		TotalAmount:  m.TotalAmount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOrderLine converts a domain OrderLine to a model OrderLine
func ToModelOrderLine(d domain.OrderLine) models.OrderLine {
	return models.OrderLine{
		OrderLineID: d.OrderLineID,
		OrderID:     d.OrderID,
		StockItemID: d.StockItemID,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
	}
}

// ToDomainOrderLine converts a model OrderLine to a domain OrderLine
func ToDomainOrderLine(m models.OrderLine) domain.OrderLine {
	return domain.OrderLine{
		OrderLineID: m.OrderLineID,
		OrderID:     m.OrderID,
		StockItemID: m.StockItemID,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
}

// ToDomainOrderLineSlice converts a slice of model OrderLines to domain OrderLines
func ToDomainOrderLineSlice(ms []models.OrderLine) []domain.OrderLine {
	ds := make([]domain.OrderLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrderLine(m)
	}
	return ds
}
