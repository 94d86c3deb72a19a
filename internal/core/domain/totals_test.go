package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumLineItems(t *testing.T) {
	t.Run("single item", func(t *testing.T) {
		got := SumLineItems([]GRNLineItem{{Quantity: d("2"), UnitPrice: d("100"), TaxPercent: d("10")}})
		assert.True(t, got.TotalAmount.Equal(d("200")))
		assert.True(t, got.TotalTax.Equal(d("20")))
		assert.True(t, got.GrandTotal.Equal(d("220")))
	})

	t.Run("two items", func(t *testing.T) {
		got := SumLineItems([]GRNLineItem{
			{Quantity: d("1"), UnitPrice: d("100"), TaxPercent: d("5")},
			{Quantity: d("2"), UnitPrice: d("100"), TaxPercent: d("10")},
		})
		assert.True(t, got.TotalAmount.Equal(d("300")))
		assert.True(t, got.TotalTax.Equal(d("25")))
		assert.True(t, got.GrandTotal.Equal(d("325")))
	})

	t.Run("no items", func(t *testing.T) {
		got := SumLineItems(nil)
		assert.True(t, got.TotalAmount.IsZero())
		assert.True(t, got.TotalTax.IsZero())
		assert.True(t, got.GrandTotal.IsZero())
	})

	t.Run("stale derived fields are not trusted", func(t *testing.T) {
		got := SumLineItems([]GRNLineItem{{
			Quantity: d("1"), UnitPrice: d("50"), TaxPercent: d("0"),
			TaxableValue: d("12345"), TotalAmount: d("12345"),
		}})
		assert.True(t, got.TotalAmount.Equal(d("50")))
	})
}

func TestSumLineItems_Invariants(t *testing.T) {
	items := []GRNLineItem{
		{Quantity: d("3"), UnitPrice: d("19.99"), TaxPercent: d("18")},
		{Quantity: d("7"), UnitPrice: d("0.35"), TaxPercent: d("12.5")},
		{Quantity: d("1"), UnitPrice: d("0"), TaxPercent: d("100")},
	}
	first := SumLineItems(items)
	second := SumLineItems(items)

	assert.True(t, first.GrandTotal.Equal(first.TotalAmount.Add(first.TotalTax)))
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))

	lineSum := d("0")
	for i := range items {
		items[i].Recalculate()
		lineSum = lineSum.Add(items[i].TotalAmount)
	}
	assert.True(t, first.GrandTotal.Equal(lineSum))
}
