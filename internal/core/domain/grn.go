package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GRNStatus is the flat status label of a goods received note.
type GRNStatus string

const (
	GRNDraft     GRNStatus = "draft"
	GRNSubmitted GRNStatus = "submitted"
	GRNApproved  GRNStatus = "approved"
	GRNRejected  GRNStatus = "rejected"
)

// IsValid reports whether s is one of the known statuses.
func (s GRNStatus) IsValid() bool {
	switch s {
	case GRNDraft, GRNSubmitted, GRNApproved, GRNRejected:
		return true
	}
	return false
}

// GRN records one receipt of goods from a vendor at a branch against an invoice.
// TotalAmount, TotalTax and GrandTotal are derived from the line items and are
// only ever written by the totals recalculation.
type GRN struct {
	GRNID         string          `json:"grnID"`
	GRNNumber     string          `json:"grnNumber"`
	GRNDate       time.Time       `json:"grnDate"`
	InvoiceNumber string          `json:"invoiceNumber"`
	VendorID      string          `json:"vendorID"`
	BranchID      string          `json:"branchID"`
	Status        GRNStatus       `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	Remarks       string          `json:"remarks"`
	AuditFields

	// Populated on reads only.
	VendorName     string        `json:"vendorName,omitempty"`
	BranchName     string        `json:"branchName,omitempty"`
	BranchLocation string        `json:"branchLocation,omitempty"`
	LineItems      []GRNLineItem `json:"lineItems,omitempty"`
}

// ApplyTotals copies computed totals onto the GRN.
func (g *GRN) ApplyTotals(t GRNTotals) {
	g.TotalAmount = t.TotalAmount
	g.TotalTax = t.TotalTax
	g.GrandTotal = t.GrandTotal
}

// GRNLineItem is one priced receipt line belonging to exactly one GRN.
type GRNLineItem struct {
	LineItemID      string          `json:"lineItemID"`
	GRNID           string          `json:"grnID"`
	SubcategoryID   string          `json:"subcategoryID"`
	ItemDescription string          `json:"itemDescription"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	TaxableValue    decimal.Decimal `json:"taxableValue"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AuditFields

	// Populated on reads only.
	SubcategoryName string `json:"subcategoryName,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
}

// CalculateLineItem returns the taxable value and total amount for a line:
// taxable = quantity * unitPrice, total = taxable + taxable * taxPercent / 100.
func CalculateLineItem(quantity, unitPrice, taxPercent decimal.Decimal) (taxableValue, totalAmount decimal.Decimal) {
	taxableValue = quantity.Mul(unitPrice)
	totalAmount = taxableValue.Add(LineTax(taxableValue, taxPercent))
	return taxableValue, totalAmount
}

// LineTax is the tax portion of a line, taxable * taxPercent / 100. Shifting the
// exponent keeps the result exact, unlike Div which rounds to DivisionPrecision.
func LineTax(taxableValue, taxPercent decimal.Decimal) decimal.Decimal {
	return taxableValue.Mul(taxPercent).Shift(-2)
}

// Recalculate overwrites the derived fields from quantity, unit price and tax percent.
func (li *GRNLineItem) Recalculate() {
	li.TaxableValue, li.TotalAmount = CalculateLineItem(li.Quantity, li.UnitPrice, li.TaxPercent)
}

// GRNListFilter narrows GRN listings.
type GRNListFilter struct {
	ListParams
	VendorID  string
	BranchID  string
	StartDate *time.Time
	EndDate   *time.Time
}
