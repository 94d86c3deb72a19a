package repositories

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
)

// GRNReader defines read operations for GRN data
type GRNReader interface {
	// FindGRNByID retrieves a GRN header with vendor and branch display names.
	FindGRNByID(ctx context.Context, grnID string) (*domain.GRN, error)

	// ListGRNs returns one page of GRNs matching filter, newest first, and the total match count.
	ListGRNs(ctx context.Context, filter domain.GRNListFilter) ([]domain.GRN, int, error)

	// ListGRNIDs returns the id of every GRN.
	ListGRNIDs(ctx context.Context) ([]string, error)
}

// GRNWriter defines write operations for GRN headers
type GRNWriter interface {
	// SaveGRN inserts a new GRN header.
	SaveGRN(ctx context.Context, grn domain.GRN) error

	// UpdateGRN updates the mutable header fields. The GRN number is never written.
	UpdateGRN(ctx context.Context, grn domain.GRN) error

	// UpdateGRNTotals persists the three derived totals.
	UpdateGRNTotals(ctx context.Context, grnID string, totals domain.GRNTotals) error

	// DeleteGRN removes the header and, by cascade, its line items.
	DeleteGRN(ctx context.Context, grnID string) error
}

// LineItemReader defines read operations for GRN line items
type LineItemReader interface {
	// FindLineItemsByGRNID retrieves every line item of a GRN in creation order.
	FindLineItemsByGRNID(ctx context.Context, grnID string) ([]domain.GRNLineItem, error)

	// FindLineItemByID retrieves a line item scoped to its owning GRN.
	FindLineItemByID(ctx context.Context, grnID, lineItemID string) (*domain.GRNLineItem, error)
}

// LineItemWriter defines write operations for GRN line items
type LineItemWriter interface {
	SaveLineItems(ctx context.Context, items []domain.GRNLineItem) error
	UpdateLineItem(ctx context.Context, item domain.GRNLineItem) error
	DeleteLineItem(ctx context.Context, grnID, lineItemID string) error
	DeleteLineItemsByGRNID(ctx context.Context, grnID string) error
}

// GRNTransactionSupport defines operations meaningful only inside a transaction
type GRNTransactionSupport interface {
	// FindGRNByIDForUpdate selects the GRN header and locks it until the transaction ends.
	FindGRNByIDForUpdate(ctx context.Context, grnID string) (*domain.GRN, error)

	// NextGRNSequence reserves the next sequence number of the period.
	NextGRNSequence(ctx context.Context, period string) (int, error)
}

// RegisterReader defines the flattened read used by the GRN register
type RegisterReader interface {
	ListRegisterRows(ctx context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error)
}

// GRNRepositoryFacade combines all GRN-related repository interfaces
type GRNRepositoryFacade interface {
	GRNReader
	GRNWriter
	LineItemReader
	LineItemWriter
	GRNTransactionSupport
	RegisterReader
}

// GRNRepositoryWithTx extends GRNRepositoryFacade with a unit of work.
type GRNRepositoryWithTx interface {
	GRNRepositoryFacade

	// WithinTransaction runs fn against a repository bound to a single database
	// transaction, committing when fn returns nil and rolling back otherwise.
	WithinTransaction(ctx context.Context, fn func(txRepo GRNRepositoryFacade) error) error
}
