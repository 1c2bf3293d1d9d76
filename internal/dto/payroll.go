package dto

import (
	"time"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayrollRunRequest defines the data needed to create a payroll run.
type CreatePayrollRunRequest struct {
	Period string          `json:"period" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PayrollRunResponse defines the data returned for a payroll run.
type PayrollRunResponse struct {
	PayrollRunID string               `json:"payrollRunID"`
	Period       string               `json:"period"`
	Amount       decimal.Decimal      `json:"amount"`
	Status       domain.PayrollStatus `json:"status"`
	PaymentDate  *time.Time           `json:"paymentDate,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	CreatedBy    string               `json:"createdBy"`
}

// ToPayrollRunResponse converts a domain.PayrollRun to PayrollRunResponse DTO.
func ToPayrollRunResponse(run *domain.PayrollRun) PayrollRunResponse {
	return PayrollRunResponse{
		PayrollRunID: run.PayrollRunID,
		Period:       run.Period,
		Amount:       run.Amount,
		Status:       run.Status,
		PaymentDate:  run.PaymentDate,
		CreatedAt:    run.CreatedAt,
		CreatedBy:    run.CreatedBy,
	}
}

// ToListPayrollRunResponse converts a slice of domain.PayrollRun to DTOs.
func ToListPayrollRunResponse(runs []domain.PayrollRun) []PayrollRunResponse {
	res := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		res[i] = ToPayrollRunResponse(&run)
	}
	return res
}

// CreatePurchaseOrderRequest defines the data needed to create a purchase order.
type CreatePurchaseOrderRequest struct {
	OrderNumber  string          `json:"orderNumber" binding:"required"`
	SupplierName string          `json:"supplierName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string                     `json:"purchaseOrderID"`
	OrderNumber     string                     `json:"orderNumber"`
	SupplierName    string                     `json:"supplierName"`
	Amount          decimal.Decimal            `json:"amount"`
	Status          domain.PurchaseOrderStatus `json:"status"`
	CreatedAt       time.Time                  `json:"createdAt"`
	CreatedBy       string                     `json:"createdBy"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to PurchaseOrderResponse DTO.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		OrderNumber:     po.OrderNumber,
		SupplierName:    po.SupplierName,
		Amount:          po.Amount,
		Status:          po.Status,
		CreatedAt:       po.CreatedAt,
		CreatedBy:       po.CreatedBy,
	}
}

// ToListPurchaseOrderResponse converts a slice of domain.PurchaseOrder to DTOs.
func ToListPurchaseOrderResponse(pos []domain.PurchaseOrder) []PurchaseOrderResponse {
	res := make([]PurchaseOrderResponse, len(pos))
	for i, po := range pos {
		res[i] = ToPurchaseOrderResponse(&po)
	}
	return res
}
