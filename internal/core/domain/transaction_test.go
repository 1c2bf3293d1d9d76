package domain_test

import (
	"testing"

	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name: "income credits the account",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(150),
				Kind:   domain.Income,
			},
			want: decimal.NewFromInt(150),
		},
		{
			name: "expense debits the account",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(150),
				Kind:   domain.Expense,
			},
			want: decimal.NewFromInt(-150),
		},
		{
			name: "fractional expense keeps precision",
			transaction: domain.Transaction{
				Amount: decimal.RequireFromString("0.05"),
				Kind:   domain.Expense,
			},
			want: decimal.RequireFromString("-0.05"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.SignedAmount()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDocumentKind_Valid(t *testing.T) {
	for _, kind := range domain.AllDocumentKinds() {
		assert.True(t, kind.Valid(), "kind %s should be valid", kind)
	}
	assert.False(t, domain.DocumentKind("INVOICE").Valid())
	assert.False(t, domain.DocumentKind("").Valid())
}
