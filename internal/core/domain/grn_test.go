package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateLineItem(t *testing.T) {
	tests := []struct {
		name        string
		qty, price  string
		taxPercent  string
		wantTaxable string
		wantTotal   string
	}{
		{"ten percent", "2", "100", "10", "200", "220"},
		{"no tax", "1", "100", "0", "100", "100"},
		{"five percent", "1", "100", "5", "100", "105"},
		{"full tax", "3", "10", "100", "30", "60"},
		{"fractional", "3", "19.99", "18", "59.97", "70.7646"},
		{"zero price", "5", "0", "12", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable, total := CalculateLineItem(d(tt.qty), d(tt.price), d(tt.taxPercent))
			assert.True(t, taxable.Equal(d(tt.wantTaxable)), "taxable %s", taxable)
			assert.True(t, total.Equal(d(tt.wantTotal)), "total %s", total)
		})
	}
}

func TestGRNLineItem_RecalculateIgnoresSuppliedDerivedValues(t *testing.T) {
	item := GRNLineItem{
		Quantity:     d("2"),
		UnitPrice:    d("100"),
		TaxPercent:   d("10"),
		TaxableValue: d("9999"),
		TotalAmount:  d("1"),
	}
	item.Recalculate()

	assert.True(t, item.TaxableValue.Equal(d("200")))
	assert.True(t, item.TotalAmount.Equal(d("220")))
}

func TestGRNStatus_IsValid(t *testing.T) {
	for _, s := range []GRNStatus{GRNDraft, GRNSubmitted, GRNApproved, GRNRejected} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, GRNStatus("closed").IsValid())
	assert.False(t, GRNStatus("").IsValid())
}

func TestGRN_ApplyTotals(t *testing.T) {
	var g GRN
	g.ApplyTotals(GRNTotals{TotalAmount: d("300"), TotalTax: d("25"), GrandTotal: d("325")})
	assert.True(t, g.GrandTotal.Equal(g.TotalAmount.Add(g.TotalTax)))
}

func TestListParams_Offset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, ListParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, ListParams{Page: 3, Limit: 10}.Offset())
}

func TestCalculateLineItem_ExactAtMaximumScale(t *testing.T) {
	qty, price, taxPercent := d("1.000001"), d("0.333333"), d("12.345678")

	taxable, total := CalculateLineItem(qty, price, taxPercent)

	assert.True(t, taxable.Equal(d("0.333333333333")), "taxable %s", taxable)
	// total - taxable must be exactly taxable * taxPercent / 100, with nothing rounded away.
	assert.True(t, total.Sub(taxable).Shift(2).Equal(taxable.Mul(taxPercent)), "total %s", total)
	assert.GreaterOrEqual(t, total.Exponent(), int32(-20))
}
