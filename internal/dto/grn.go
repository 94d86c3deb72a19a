package dto

import (
	"time"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest carries the caller-owned fields of a line item. Taxable value
// and total amount are always derived and cannot be supplied.
type LineItemRequest struct {
	SubcategoryID   string           `json:"subcategoryID" binding:"required"`
	ItemDescription string           `json:"itemDescription" binding:"required,max=100"`
	Quantity        decimal.Decimal  `json:"quantity" binding:"dgte=1,dscale=6"`
	UnitPrice       *decimal.Decimal `json:"unitPrice" binding:"required,dgte=0,dscale=6"`
	TaxPercent      decimal.Decimal  `json:"taxPercent" binding:"dgte=0,dlte=100,dscale=6"`
}

// CreateGRNRequest defines the data needed to create a GRN.
type CreateGRNRequest struct {
	GRNNumber     string            `json:"grnNumber" binding:"omitempty,max=30"` // Optional, generated when empty
	GRNDate       *time.Time        `json:"grnDate"`                              // Optional, defaults to now
	InvoiceNumber string            `json:"invoiceNumber" binding:"required,max=30"`
	VendorID      string            `json:"vendorID" binding:"required"`
	BranchID      string            `json:"branchID" binding:"required"`
	Status        string            `json:"status" binding:"omitempty,oneof=draft submitted approved rejected"`
	Remarks       string            `json:"remarks" binding:"max=500"`
	LineItems     []LineItemRequest `json:"lineItems" binding:"dive"`
}

// UpdateGRNRequest defines the header fields allowed for updating a GRN.
// Use pointers to distinguish between zero-value updates and fields not provided.
// LineItems nil leaves the items untouched; non-nil (even empty) replaces them all.
type UpdateGRNRequest struct {
	GRNDate       *time.Time         `json:"grnDate"`
	InvoiceNumber *string            `json:"invoiceNumber" binding:"omitempty,min=1,max=30"`
	VendorID      *string            `json:"vendorID" binding:"omitempty,min=1"`
	BranchID      *string            `json:"branchID" binding:"omitempty,min=1"`
	Status        *string            `json:"status" binding:"omitempty,oneof=draft submitted approved rejected"`
	Remarks       *string            `json:"remarks" binding:"omitempty,max=500"`
	LineItems     *[]LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// ReplaceLineItemsRequest replaces the whole line item set. An empty list clears it.
type ReplaceLineItemsRequest struct {
	LineItems []LineItemRequest `json:"lineItems" binding:"required,dive"`
}

// ListGRNsQuery carries the GRN list filters.
type ListGRNsQuery struct {
	ListQuery
	VendorID  string     `form:"vendorID"`
	BranchID  string     `form:"branchID"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID      string          `json:"lineItemID"`
	GRNID           string          `json:"grnID"`
	SubcategoryID   string          `json:"subcategoryID"`
	SubcategoryName string          `json:"subcategoryName,omitempty"`
	CategoryName    string          `json:"categoryName,omitempty"`
	ItemDescription string          `json:"itemDescription"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	TaxableValue    decimal.Decimal `json:"taxableValue"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// GRNResponse defines the data returned for a GRN.
type GRNResponse struct {
	GRNID          string             `json:"grnID"`
	GRNNumber      string             `json:"grnNumber"`
	GRNDate        time.Time          `json:"grnDate"`
	InvoiceNumber  string             `json:"invoiceNumber"`
	VendorID       string             `json:"vendorID"`
	VendorName     string             `json:"vendorName,omitempty"`
	BranchID       string             `json:"branchID"`
	BranchName     string             `json:"branchName,omitempty"`
	BranchLocation string             `json:"branchLocation,omitempty"`
	Status         domain.GRNStatus   `json:"status"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	TotalTax       decimal.Decimal    `json:"totalTax"`
	GrandTotal     decimal.Decimal    `json:"grandTotal"`
	Remarks        string             `json:"remarks"`
	LineItems      []LineItemResponse `json:"lineItems,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// TotalsResponse is returned by the recalculate endpoint.
type TotalsResponse struct {
	GRNID       string          `json:"grnID"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalTax    decimal.Decimal `json:"totalTax"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
}

// ToLineItemResponse converts a domain.GRNLineItem to LineItemResponse DTO.
func ToLineItemResponse(li *domain.GRNLineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:      li.LineItemID,
		GRNID:           li.GRNID,
		SubcategoryID:   li.SubcategoryID,
		SubcategoryName: li.SubcategoryName,
		CategoryName:    li.CategoryName,
		ItemDescription: li.ItemDescription,
		Quantity:        li.Quantity,
		UnitPrice:       li.UnitPrice,
		TaxPercent:      li.TaxPercent,
		TaxableValue:    li.TaxableValue,
		TotalAmount:     li.TotalAmount,
		CreatedAt:       li.CreatedAt,
		CreatedBy:       li.CreatedBy,
		LastUpdatedAt:   li.LastUpdatedAt,
		LastUpdatedBy:   li.LastUpdatedBy,
	}
}

// ToLineItemResponses converts a slice of domain.GRNLineItem to []LineItemResponse.
func ToLineItemResponses(items []domain.GRNLineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i := range items {
		responses[i] = ToLineItemResponse(&items[i])
	}
	return responses
}

// ToGRNResponse converts a domain.GRN to GRNResponse DTO.
func ToGRNResponse(g *domain.GRN) GRNResponse {
	resp := GRNResponse{
		GRNID:          g.GRNID,
		GRNNumber:      g.GRNNumber,
		GRNDate:        g.GRNDate,
		InvoiceNumber:  g.InvoiceNumber,
		VendorID:       g.VendorID,
		VendorName:     g.VendorName,
		BranchID:       g.BranchID,
		BranchName:     g.BranchName,
		BranchLocation: g.BranchLocation,
		Status:         g.Status,
		TotalAmount:    g.TotalAmount,
		TotalTax:       g.TotalTax,
		GrandTotal:     g.GrandTotal,
		Remarks:        g.Remarks,
		CreatedAt:      g.CreatedAt,
		CreatedBy:      g.CreatedBy,
		LastUpdatedAt:  g.LastUpdatedAt,
		LastUpdatedBy:  g.LastUpdatedBy,
	}
	if len(g.LineItems) > 0 {
		resp.LineItems = ToLineItemResponses(g.LineItems)
	}
	return resp
}

// ToGRNResponses converts a slice of domain.GRN to []GRNResponse.
func ToGRNResponses(grns []domain.GRN) []GRNResponse {
	responses := make([]GRNResponse, len(grns))
	for i := range grns {
		responses[i] = ToGRNResponse(&grns[i])
	}
	return responses
}
