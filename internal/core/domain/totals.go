package domain

import "github.com/shopspring/decimal"

// GRNTotals is the aggregate of a GRN's line items.
type GRNTotals struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalTax    decimal.Decimal `json:"totalTax"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
}

// SumLineItems aggregates items: the sum of taxable values, the sum of line
// taxes and their total. An empty slice yields zero totals.
func SumLineItems(items []GRNLineItem) GRNTotals {
	totalAmount := decimal.Zero
	totalTax := decimal.Zero
	for _, item := range items {
		taxable, _ := CalculateLineItem(item.Quantity, item.UnitPrice, item.TaxPercent)
		totalAmount = totalAmount.Add(taxable)
		totalTax = totalTax.Add(LineTax(taxable, item.TaxPercent))
	}
	return GRNTotals{
		TotalAmount: totalAmount,
		TotalTax:    totalTax,
		GrandTotal:  totalAmount.Add(totalTax),
	}
}
