package mapping

import (
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
)

// ToModelStockItem converts a domain StockItem to a model StockItem
func ToModelStockItem(d domain.StockItem) models.StockItem {
	return models.StockItem{
		StockItemID:  d.StockItemID,
		TenantID:     d.TenantID,
		SKU:          d.SKU,
		Name:         d.Name,
		Quantity:     d.Quantity,
		ReorderLevel: d.ReorderLevel,
		UnitPrice:    d.UnitPrice,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockItem converts a model StockItem to a domain StockItem
func ToDomainStockItem(m models.StockItem) domain.StockItem {
	return domain.StockItem{
		StockItemID:  m.StockItemID,
		TenantID:     m.TenantID,
		SKU:          m.SKU,
		Name:         m.Name,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		UnitPrice:    m.UnitPrice,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockItemSlice converts a slice of model StockItems to domain StockItems
func ToDomainStockItemSlice(ms []models.StockItem) []domain.StockItem {
	ds := make([]domain.StockItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockItem(m)
	}
	return ds
}
