package services

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

// GRNReaderSvc defines read operations for GRN data
type GRNReaderSvc interface {
	// GetGRNByID retrieves a GRN with its line items and display names.
	GetGRNByID(ctx context.Context, grnID string) (*domain.GRN, error)

	// ListGRNs retrieves one page of GRNs, newest first.
	ListGRNs(ctx context.Context, query dto.ListGRNsQuery) ([]domain.GRN, pagination.Meta, error)
}

// GRNWriterSvc defines write operations for GRN headers
type GRNWriterSvc interface {
	// CreateGRN persists a new GRN with its line items, allocating a number when none is supplied.
	CreateGRN(ctx context.Context, req dto.CreateGRNRequest, creatorUserID string) (*domain.GRN, error)

	// UpdateGRN updates header fields and, when req.LineItems is set, replaces the line items.
	UpdateGRN(ctx context.Context, grnID string, req dto.UpdateGRNRequest, userID string) (*domain.GRN, error)

	// DeleteGRN removes a GRN together with its line items.
	DeleteGRN(ctx context.Context, grnID string) error
}

// LineItemSvc defines line item operations. Each one recalculates the owning GRN's totals.
type LineItemSvc interface {
	// ReplaceLineItems discards every line item of the GRN and inserts items instead.
	ReplaceLineItems(ctx context.Context, grnID string, items []dto.LineItemRequest, userID string) (*domain.GRN, error)

	AddLineItem(ctx context.Context, grnID string, req dto.LineItemRequest, userID string) (*domain.GRNLineItem, error)
	UpdateLineItem(ctx context.Context, grnID, lineItemID string, req dto.LineItemRequest, userID string) (*domain.GRNLineItem, error)
	DeleteLineItem(ctx context.Context, grnID, lineItemID string, userID string) error
}

// GRNTotalsSvc defines the totals aggregation entry points
type GRNTotalsSvc interface {
	// RecalculateTotals recomputes and persists the totals of one GRN.
	RecalculateTotals(ctx context.Context, grnID string) (domain.GRNTotals, error)

	// RecalculateAllTotals recomputes every GRN and returns how many were processed.
	RecalculateAllTotals(ctx context.Context) (int, error)
}

// GRNSvcFacade combines all GRN-related service interfaces
type GRNSvcFacade interface {
	GRNReaderSvc
	GRNWriterSvc
	LineItemSvc
	GRNTotalsSvc
}
