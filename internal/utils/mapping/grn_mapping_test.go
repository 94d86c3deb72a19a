package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGRNMapping_OptionalColumns(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	g := domain.GRN{
		GRNID:       "g1",
		GRNNumber:   "GRN-202403-001",
		GRNDate:     now,
		Status:      domain.GRNDraft,
		TotalAmount: decimal.NewFromInt(200),
		AuditFields: domain.NewAuditFields("u1", now),
	}

	m := ToModelGRN(g)
	assert.False(t, m.Remarks.Valid)
	assert.False(t, m.VendorName.Valid)
	assert.Equal(t, "draft", m.Status)

	g.Remarks = "damaged box"
	m = ToModelGRN(g)
	assert.True(t, m.Remarks.Valid)

	back := ToDomainGRN(m)
	assert.Equal(t, g.Remarks, back.Remarks)
	assert.Equal(t, g.AuditFields, back.AuditFields)
	assert.True(t, back.TotalAmount.Equal(g.TotalAmount))
}

func TestGRNLineItemMapping_Slice(t *testing.T) {
	items := ToDomainGRNLineItemSlice(nil)
	assert.Empty(t, items)

	item := domain.GRNLineItem{LineItemID: "l1", GRNID: "g1", CategoryName: "IT"}
	back := ToDomainGRNLineItem(ToModelGRNLineItem(item))
	assert.Equal(t, "IT", back.CategoryName)
	assert.Equal(t, "", back.SubcategoryName)
}
