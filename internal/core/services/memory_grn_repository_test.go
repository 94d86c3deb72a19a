package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
)

// memGRNRepository is an in-memory GRNRepositoryWithTx. Transactions are serialized
// and roll back the whole store when fn fails.
type memGRNRepository struct {
	txMu sync.Mutex
	mu   sync.Mutex

	grns     map[string]domain.GRN
	items    []domain.GRNLineItem
	counters map[string]int

	// failTotals makes UpdateGRNTotals fail when set.
	failTotals error
}

var _ portsrepo.GRNRepositoryWithTx = (*memGRNRepository)(nil)

func newMemGRNRepository() *memGRNRepository {
	return &memGRNRepository{
		grns:     map[string]domain.GRN{},
		counters: map[string]int{},
	}
}

func (m *memGRNRepository) WithinTransaction(ctx context.Context, fn func(txRepo portsrepo.GRNRepositoryFacade) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	grns := make(map[string]domain.GRN, len(m.grns))
	for k, v := range m.grns {
		grns[k] = v
	}
	items := append([]domain.GRNLineItem(nil), m.items...)
	counters := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.grns, m.items, m.counters = grns, items, counters
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memGRNRepository) FindGRNByID(_ context.Context, grnID string) (*domain.GRN, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	grn, ok := m.grns[grnID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &grn, nil
}

func (m *memGRNRepository) FindGRNByIDForUpdate(ctx context.Context, grnID string) (*domain.GRN, error) {
	return m.FindGRNByID(ctx, grnID)
}

func (m *memGRNRepository) ListGRNs(_ context.Context, filter domain.GRNListFilter) ([]domain.GRN, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	search := strings.ToLower(filter.Search)
	var matched []domain.GRN
	for _, g := range m.grns {
		if filter.Status != "" && string(g.Status) != filter.Status {
			continue
		}
		if filter.VendorID != "" && g.VendorID != filter.VendorID {
			continue
		}
		if filter.BranchID != "" && g.BranchID != filter.BranchID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(g.GRNNumber), search) &&
			!strings.Contains(strings.ToLower(g.InvoiceNumber), search) {
			continue
		}
		matched = append(matched, g)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].GRNNumber > matched[j].GRNNumber })

	total := len(matched)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *memGRNRepository) ListGRNIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.grns))
	for id := range m.grns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *memGRNRepository) SaveGRN(_ context.Context, grn domain.GRN) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.grns {
		if existing.GRNNumber == grn.GRNNumber {
			return fmt.Errorf("%w: grn number %s", apperrors.ErrDuplicate, grn.GRNNumber)
		}
	}
	grn.LineItems = nil
	m.grns[grn.GRNID] = grn
	return nil
}

func (m *memGRNRepository) UpdateGRN(_ context.Context, grn domain.GRN) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.grns[grn.GRNID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.GRNDate = grn.GRNDate
	existing.InvoiceNumber = grn.InvoiceNumber
	existing.VendorID = grn.VendorID
	existing.BranchID = grn.BranchID
	existing.Status = grn.Status
	existing.Remarks = grn.Remarks
	existing.LastUpdatedAt = grn.LastUpdatedAt
	existing.LastUpdatedBy = grn.LastUpdatedBy
	m.grns[grn.GRNID] = existing
	return nil
}

func (m *memGRNRepository) UpdateGRNTotals(_ context.Context, grnID string, totals domain.GRNTotals) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTotals != nil {
		return m.failTotals
	}
	existing, ok := m.grns[grnID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.ApplyTotals(totals)
	m.grns[grnID] = existing
	return nil
}

func (m *memGRNRepository) DeleteGRN(_ context.Context, grnID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.grns[grnID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.grns, grnID)
	m.removeItems(func(li domain.GRNLineItem) bool { return li.GRNID == grnID })
	return nil
}

func (m *memGRNRepository) removeItems(match func(domain.GRNLineItem) bool) int {
	kept := m.items[:0]
	removed := 0
	for _, li := range m.items {
		if match(li) {
			removed++
			continue
		}
		kept = append(kept, li)
	}
	m.items = kept
	return removed
}

func (m *memGRNRepository) FindLineItemsByGRNID(_ context.Context, grnID string) ([]domain.GRNLineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []domain.GRNLineItem
	for _, li := range m.items {
		if li.GRNID == grnID {
			items = append(items, li)
		}
	}
	return items, nil
}

func (m *memGRNRepository) FindLineItemByID(_ context.Context, grnID, lineItemID string) (*domain.GRNLineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, li := range m.items {
		if li.GRNID == grnID && li.LineItemID == lineItemID {
			return &li, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memGRNRepository) SaveLineItems(_ context.Context, items []domain.GRNLineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, li := range items {
		if _, ok := m.grns[li.GRNID]; !ok {
			return fmt.Errorf("%w: unknown grn %s", apperrors.ErrValidation, li.GRNID)
		}
	}
	m.items = append(m.items, items...)
	return nil
}

func (m *memGRNRepository) UpdateLineItem(_ context.Context, item domain.GRNLineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, li := range m.items {
		if li.GRNID == item.GRNID && li.LineItemID == item.LineItemID {
			m.items[i] = item
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memGRNRepository) DeleteLineItem(_ context.Context, grnID, lineItemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := m.removeItems(func(li domain.GRNLineItem) bool {
		return li.GRNID == grnID && li.LineItemID == lineItemID
	})
	if removed == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *memGRNRepository) DeleteLineItemsByGRNID(_ context.Context, grnID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeItems(func(li domain.GRNLineItem) bool { return li.GRNID == grnID })
	return nil
}

func (m *memGRNRepository) NextGRNSequence(_ context.Context, period string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	numbers := make([]string, 0, len(m.grns))
	for _, g := range m.grns {
		numbers = append(numbers, g.GRNNumber)
	}
	next := domain.NextSequence(m.counters[period], domain.HighestSequence(period, numbers))
	if next > domain.MaxGRNSequence {
		return 0, fmt.Errorf("%w: grn sequence exhausted for %s", apperrors.ErrConflict, period)
	}
	m.counters[period] = next
	return next, nil
}

func (m *memGRNRepository) ListRegisterRows(_ context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []domain.RegisterRow
	for _, g := range m.grns {
		if filter.VendorID != "" && g.VendorID != filter.VendorID {
			continue
		}
		if filter.BranchID != "" && g.BranchID != filter.BranchID {
			continue
		}
		rows = append(rows, domain.RegisterRow{
			GRNNumber:     g.GRNNumber,
			GRNDate:       g.GRNDate,
			InvoiceNumber: g.InvoiceNumber,
			TotalAmount:   g.TotalAmount,
			TotalTax:      g.TotalTax,
			GrandTotal:    g.GrandTotal,
			Status:        g.Status,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].GRNDate.After(rows[j].GRNDate) })
	return rows, nil
}

// itemCount returns the number of stored line items across all GRNs.
func (m *memGRNRepository) itemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
