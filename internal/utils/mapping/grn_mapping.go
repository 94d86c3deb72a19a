package mapping

import (
	"database/sql"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/SscSPs/grn_tracker/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelGRN converts a domain GRN to a model GRN
func ToModelGRN(d domain.GRN) models.GRN {
	return models.GRN{
		GRNID:          d.GRNID,
		GRNNumber:      d.GRNNumber,
		GRNDate:        d.GRNDate,
		InvoiceNumber:  d.InvoiceNumber,
		VendorID:       d.VendorID,
		BranchID:       d.BranchID,
		Status:         string(d.Status),
		TotalAmount:    d.TotalAmount,
		TotalTax:       d.TotalTax,
		GrandTotal:     d.GrandTotal,
		Remarks:        nullString(d.Remarks),
		AuditFields:    ToModelAuditFields(d.AuditFields),
		VendorName:     nullString(d.VendorName),
		BranchName:     nullString(d.BranchName),
		BranchLocation: nullString(d.BranchLocation),
	}
}

// ToDomainGRN converts a model GRN to a domain GRN
func ToDomainGRN(m models.GRN) domain.GRN {
	return domain.GRN{
		GRNID:          m.GRNID,
		GRNNumber:      m.GRNNumber,
		GRNDate:        m.GRNDate,
		InvoiceNumber:  m.InvoiceNumber,
		VendorID:       m.VendorID,
		BranchID:       m.BranchID,
		Status:         domain.GRNStatus(m.Status),
		TotalAmount:    m.TotalAmount,
		TotalTax:       m.TotalTax,
		GrandTotal:     m.GrandTotal,
		Remarks:        m.Remarks.String,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		VendorName:     m.VendorName.String,
		BranchName:     m.BranchName.String,
		BranchLocation: m.BranchLocation.String,
	}
}

// ToDomainGRNSlice converts a slice of model GRNs to a slice of domain GRNs
func ToDomainGRNSlice(ms []models.GRN) []domain.GRN {
	ds := make([]domain.GRN, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGRN(m)
	}
	return ds
}

// ToModelGRNLineItem converts a domain GRNLineItem to a model GRNLineItem
func ToModelGRNLineItem(d domain.GRNLineItem) models.GRNLineItem {
	return models.GRNLineItem{
		LineItemID:      d.LineItemID,
		GRNID:           d.GRNID,
		SubcategoryID:   d.SubcategoryID,
		ItemDescription: d.ItemDescription,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		TaxPercent:      d.TaxPercent,
		TaxableValue:    d.TaxableValue,
		TotalAmount:     d.TotalAmount,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		SubcategoryName: nullString(d.SubcategoryName),
		CategoryName:    nullString(d.CategoryName),
	}
}

// ToDomainGRNLineItem converts a model GRNLineItem to a domain GRNLineItem
func ToDomainGRNLineItem(m models.GRNLineItem) domain.GRNLineItem {
	return domain.GRNLineItem{
		LineItemID:      m.LineItemID,
		GRNID:           m.GRNID,
		SubcategoryID:   m.SubcategoryID,
		ItemDescription: m.ItemDescription,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TaxPercent:      m.TaxPercent,
		TaxableValue:    m.TaxableValue,
		TotalAmount:     m.TotalAmount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		SubcategoryName: m.SubcategoryName.String,
		CategoryName:    m.CategoryName.String,
	}
}

// ToDomainGRNLineItemSlice converts a slice of model line items to domain line items
func ToDomainGRNLineItemSlice(ms []models.GRNLineItem) []domain.GRNLineItem {
	ds := make([]domain.GRNLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGRNLineItem(m)
	}
	return ds
}
