package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterFilter selects the GRNs included in the register. Dates are inclusive.
type RegisterFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	VendorID  string
	BranchID  string
}

// RegisterRow is one flattened GRN line of the register report.
type RegisterRow struct {
	GRNNumber      string          `json:"grnNumber"`
	GRNDate        time.Time       `json:"grnDate"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	VendorName     string          `json:"vendorName"`
	BranchName     string          `json:"branchName"`
	BranchLocation string          `json:"branchLocation"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Status         GRNStatus       `json:"status"`
}

// RegisterDateLayout is the display layout of register dates.
const RegisterDateLayout = "2006-01-02"
