package dto

import (
	"time"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/SscSPs/grn_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// RegisterQuery carries the register filters and output format.
type RegisterQuery struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1"`
	VendorID  string     `form:"vendorID"`
	BranchID  string     `form:"branchID"`
	Format    string     `form:"format" binding:"omitempty,oneof=json excel"`
}

// ToFilter converts the query into a domain.RegisterFilter.
func (q RegisterQuery) ToFilter() domain.RegisterFilter {
	return domain.RegisterFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		VendorID:  q.VendorID,
		BranchID:  q.BranchID,
	}
}

// RegisterRowResponse is one display row of the GRN register.
type RegisterRowResponse struct {
	GRNNumber      string           `json:"grnNumber"`
	GRNDate        string           `json:"grnDate"`
	InvoiceNumber  string           `json:"invoiceNumber"`
	VendorName     string           `json:"vendorName"`
	BranchName     string           `json:"branchName"`
	BranchLocation string           `json:"branchLocation"`
	TotalAmount    decimal.Decimal  `json:"totalAmount"`
	TotalTax       decimal.Decimal  `json:"totalTax"`
	GrandTotal     decimal.Decimal  `json:"grandTotal"`
	Status         domain.GRNStatus `json:"status"`
}

// ToRegisterRowResponses formats register rows for display.
func ToRegisterRowResponses(rows []domain.RegisterRow) []RegisterRowResponse {
	responses := make([]RegisterRowResponse, len(rows))
	for i, r := range rows {
		responses[i] = RegisterRowResponse{
			GRNNumber:      r.GRNNumber,
			GRNDate:        r.GRNDate.Format(domain.RegisterDateLayout),
			InvoiceNumber:  r.InvoiceNumber,
			VendorName:     r.VendorName,
			BranchName:     r.BranchName,
			BranchLocation: r.BranchLocation,
			TotalAmount:    utils.RoundForDisplay(r.TotalAmount),
			TotalTax:       utils.RoundForDisplay(r.TotalTax),
			GrandTotal:     utils.RoundForDisplay(r.GrandTotal),
			Status:         r.Status,
		}
	}
	return responses
}
