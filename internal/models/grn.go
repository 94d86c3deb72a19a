package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// GRN is the persistence shape of a row in grns, plus joined display columns.
type GRN struct {
	GRNID         string          `json:"grnID"`
	GRNNumber     string          `json:"grnNumber"`
	GRNDate       time.Time       `json:"grnDate"`
	InvoiceNumber string          `json:"invoiceNumber"`
	VendorID      string          `json:"vendorID"`
	BranchID      string          `json:"branchID"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	Remarks       sql.NullString  `json:"remarks"`
	AuditFields

	VendorName     sql.NullString `json:"vendorName"`
	BranchName     sql.NullString `json:"branchName"`
	BranchLocation sql.NullString `json:"branchLocation"`
}

// GRNLineItem is the persistence shape of a row in grn_line_items.
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

	SubcategoryName sql.NullString `json:"subcategoryName"`
	CategoryName    sql.NullString `json:"categoryName"`
}
