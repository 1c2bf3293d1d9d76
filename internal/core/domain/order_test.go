package domain_test

import (
	"testing"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_ComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.OrderLine
		want  decimal.Decimal
	}{
		{
			name:  "no lines",
			lines: nil,
			want:  decimal.Zero,
		},
		{
			name: "single line",
			lines: []domain.OrderLine{
				{Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
			},
			want: decimal.NewFromInt(30),
		},
		{
			name: "multiple lines with fractional prices",
			lines: []domain.OrderLine{
				{Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
				{Quantity: 1, UnitPrice: decimal.RequireFromString("0.02")},
			},
			want: decimal.RequireFromString("20.00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := domain.Order{Lines: tt.lines}
			got := order.ComputeTotal()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestStockItem_NeedsReorder(t *testing.T) {
	assert.True(t, domain.StockItem{Quantity: 3, ReorderLevel: 5}.NeedsReorder())
	assert.True(t, domain.StockItem{Quantity: 5, ReorderLevel: 5}.NeedsReorder())
	assert.False(t, domain.StockItem{Quantity: 6, ReorderLevel: 5}.NeedsReorder())
}
