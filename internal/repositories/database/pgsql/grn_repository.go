package pgsql

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/grn_tracker/internal/models"
	"github.com/SscSPs/grn_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGRNRepository persists GRNs, their line items and the per-period number counters.
// db is the pool outside a unit of work and the open transaction inside one.
type PgxGRNRepository struct {
	BaseRepository
	db DBTX
}

// newPgxGRNRepository creates a new repository for GRN and line item data.
func newPgxGRNRepository(pool *pgxpool.Pool) portsrepo.GRNRepositoryWithTx {
	return &PgxGRNRepository{
		BaseRepository: BaseRepository{Pool: pool},
		db:             pool,
	}
}

// Ensure PgxGRNRepository implements portsrepo.GRNRepositoryWithTx
var _ portsrepo.GRNRepositoryWithTx = (*PgxGRNRepository)(nil)

var periodPattern = regexp.MustCompile(`^[0-9]{6}$`)

const grnSelectQuery = `
SELECT
	g.grn_id, g.grn_number, g.grn_date, g.invoice_number, g.vendor_id, g.branch_id, g.status,
	g.total_amount, g.total_tax, g.grand_total, g.remarks,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by,
	v.name, b.name, b.location
FROM grns g
LEFT JOIN vendors v ON v.vendor_id = g.vendor_id
LEFT JOIN branches b ON b.branch_id = g.branch_id
`

const lineItemSelectQuery = `
SELECT
	li.line_item_id, li.grn_id, li.subcategory_id, li.item_description,
	li.quantity, li.unit_price, li.tax_percent, li.taxable_value, li.total_amount,
	li.created_at, li.created_by, li.last_updated_at, li.last_updated_by,
	s.name, c.name
FROM grn_line_items li
LEFT JOIN asset_subcategories s ON s.subcategory_id = li.subcategory_id
LEFT JOIN asset_categories c ON c.category_id = s.category_id
`

func scanGRN(row pgx.Row) (models.GRN, error) {
	var m models.GRN
	err := row.Scan(
		&m.GRNID,
		&m.GRNNumber,
		&m.GRNDate,
		&m.InvoiceNumber,
		&m.VendorID,
		&m.BranchID,
		&m.Status,
		&m.TotalAmount,
		&m.TotalTax,
		&m.GrandTotal,
		&m.Remarks,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.VendorName,
		&m.BranchName,
		&m.BranchLocation,
	)
	return m, err
}

func scanLineItem(row pgx.Row) (models.GRNLineItem, error) {
	var m models.GRNLineItem
	err := row.Scan(
		&m.LineItemID,
		&m.GRNID,
		&m.SubcategoryID,
		&m.ItemDescription,
		&m.Quantity,
		&m.UnitPrice,
		&m.TaxPercent,
		&m.TaxableValue,
		&m.TotalAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.SubcategoryName,
		&m.CategoryName,
	)
	return m, err
}

// WithinTransaction runs fn against a copy of the repository bound to one transaction.
// Called on a repository that is already transactional, it reuses that transaction.
func (r *PgxGRNRepository) WithinTransaction(ctx context.Context, fn func(txRepo portsrepo.GRNRepositoryFacade) error) error {
	if _, inTx := r.db.(pgx.Tx); inTx {
		return fn(r)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	if err := fn(&PgxGRNRepository{BaseRepository: r.BaseRepository, db: tx}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxGRNRepository) findGRN(ctx context.Context, query, grnID string) (*domain.GRN, error) {
	m, err := scanGRN(r.db.QueryRow(ctx, query, grnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find grn by ID "+grnID, err)
	}
	grn := mapping.ToDomainGRN(m)
	return &grn, nil
}

// FindGRNByID retrieves a GRN header by its ID.
func (r *PgxGRNRepository) FindGRNByID(ctx context.Context, grnID string) (*domain.GRN, error) {
	return r.findGRN(ctx, grnSelectQuery+`WHERE g.grn_id = $1;`, grnID)
}

// FindGRNByIDForUpdate retrieves a GRN header and locks its row. Only the grns row is
// locked; the joined vendor and branch rows are not.
func (r *PgxGRNRepository) FindGRNByIDForUpdate(ctx context.Context, grnID string) (*domain.GRN, error) {
	return r.findGRN(ctx, grnSelectQuery+`WHERE g.grn_id = $1 FOR UPDATE OF g;`, grnID)
}

// ListGRNs retrieves one page of GRNs, newest first.
func (r *PgxGRNRepository) ListGRNs(ctx context.Context, filter domain.GRNListFilter) ([]domain.GRN, int, error) {
	f := &filterBuilder{}
	f.addSearch(filter.Search, "g.grn_number", "g.invoice_number")
	if filter.Status != "" {
		f.add("g.status = ?", filter.Status)
	}
	if filter.VendorID != "" {
		f.add("g.vendor_id = ?", filter.VendorID)
	}
	if filter.BranchID != "" {
		f.add("g.branch_id = ?", filter.BranchID)
	}
	if filter.StartDate != nil {
		f.add("g.grn_date >= ?", startOfDay(*filter.StartDate))
	}
	if filter.EndDate != nil {
		f.add("g.grn_date < ?", startOfDay(*filter.EndDate).AddDate(0, 0, 1))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM grns g`+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count grns", err)
	}

	suffix, args := f.paginate(filter.Limit, filter.Offset())
	rows, err := r.db.Query(ctx, grnSelectQuery+f.where()+` ORDER BY g.created_at DESC, g.grn_number DESC`+suffix, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to query grns", err)
	}
	defer rows.Close()

	grns := []models.GRN{}
	for rows.Next() {
		m, err := scanGRN(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan grn row", err)
		}
		grns = append(grns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "error iterating grn rows", err)
	}
	return mapping.ToDomainGRNSlice(grns), total, nil
}

// ListGRNIDs returns every GRN id in creation order.
func (r *PgxGRNRepository) ListGRNIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT grn_id FROM grns ORDER BY created_at;`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query grn ids", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect grn ids", err)
	}
	return ids, nil
}

// SaveGRN inserts a GRN header.
func (r *PgxGRNRepository) SaveGRN(ctx context.Context, grn domain.GRN) error {
	m := mapping.ToModelGRN(grn)
	query := `
		INSERT INTO grns (
			grn_id, grn_number, grn_date, invoice_number, vendor_id, branch_id, status,
			total_amount, total_tax, grand_total, remarks,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.GRNID,
		m.GRNNumber,
		m.GRNDate,
		m.InvoiceNumber,
		m.VendorID,
		m.BranchID,
		m.Status,
		m.TotalAmount,
		m.TotalTax,
		m.GrandTotal,
		m.Remarks,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert grn "+m.GRNNumber)
	}
	return nil
}

// UpdateGRN updates header fields. grn_number and the totals are not touched.
func (r *PgxGRNRepository) UpdateGRN(ctx context.Context, grn domain.GRN) error {
	m := mapping.ToModelGRN(grn)
	query := `
		UPDATE grns
		SET grn_date = $2, invoice_number = $3, vendor_id = $4, branch_id = $5, status = $6,
		    remarks = $7, last_updated_at = $8, last_updated_by = $9
		WHERE grn_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.GRNID,
		m.GRNDate,
		m.InvoiceNumber,
		m.VendorID,
		m.BranchID,
		m.Status,
		m.Remarks,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update grn "+m.GRNID)
	}
	return requireAffected(tag)
}

// UpdateGRNTotals persists the derived totals of a GRN.
func (r *PgxGRNRepository) UpdateGRNTotals(ctx context.Context, grnID string, totals domain.GRNTotals) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE grns SET total_amount = $2, total_tax = $3, grand_total = $4 WHERE grn_id = $1;`,
		grnID, totals.TotalAmount, totals.TotalTax, totals.GrandTotal,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update totals for grn "+grnID, err)
	}
	return requireAffected(tag)
}

// DeleteGRN deletes a GRN header. Line items go with it through ON DELETE CASCADE.
func (r *PgxGRNRepository) DeleteGRN(ctx context.Context, grnID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM grns WHERE grn_id = $1;`, grnID)
	if err != nil {
		return mapDeleteError(err, "failed to delete grn "+grnID)
	}
	return requireAffected(tag)
}

// FindLineItemsByGRNID retrieves every line item of a GRN.
func (r *PgxGRNRepository) FindLineItemsByGRNID(ctx context.Context, grnID string) ([]domain.GRNLineItem, error) {
	rows, err := r.db.Query(ctx, lineItemSelectQuery+`WHERE li.grn_id = $1 ORDER BY li.created_at, li.item_seq;`, grnID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query line items for grn "+grnID, err)
	}
	defer rows.Close()

	items := []models.GRNLineItem{}
	for rows.Next() {
		m, err := scanLineItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan line item row for grn "+grnID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating line item rows for grn "+grnID, err)
	}
	return mapping.ToDomainGRNLineItemSlice(items), nil
}

// FindLineItemByID retrieves one line item, provided it belongs to grnID.
func (r *PgxGRNRepository) FindLineItemByID(ctx context.Context, grnID, lineItemID string) (*domain.GRNLineItem, error) {
	m, err := scanLineItem(r.db.QueryRow(ctx, lineItemSelectQuery+`WHERE li.line_item_id = $1 AND li.grn_id = $2;`, lineItemID, grnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find line item "+lineItemID, err)
	}
	item := mapping.ToDomainGRNLineItem(m)
	return &item, nil
}

// SaveLineItems inserts line items in a single batch.
func (r *PgxGRNRepository) SaveLineItems(ctx context.Context, items []domain.GRNLineItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `
		INSERT INTO grn_line_items (
			line_item_id, grn_id, subcategory_id, item_description,
			quantity, unit_price, tax_percent, taxable_value, total_amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelGRNLineItem(item)
		batch.Queue(query,
			m.LineItemID,
			m.GRNID,
			m.SubcategoryID,
			m.ItemDescription,
			m.Quantity,
			m.UnitPrice,
			m.TaxPercent,
			m.TaxableValue,
			m.TotalAmount,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	// Close the batch results to surface errors from each queued insert
	if err := br.Close(); err != nil {
		return mapWriteError(err, "failed to insert line items for grn "+items[0].GRNID)
	}
	return nil
}

// UpdateLineItem updates the caller-owned and derived fields of a line item.
func (r *PgxGRNRepository) UpdateLineItem(ctx context.Context, item domain.GRNLineItem) error {
	m := mapping.ToModelGRNLineItem(item)
	query := `
		UPDATE grn_line_items
		SET subcategory_id = $3, item_description = $4, quantity = $5, unit_price = $6, tax_percent = $7,
		    taxable_value = $8, total_amount = $9, last_updated_at = $10, last_updated_by = $11
		WHERE line_item_id = $1 AND grn_id = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		m.LineItemID,
		m.GRNID,
		m.SubcategoryID,
		m.ItemDescription,
		m.Quantity,
		m.UnitPrice,
		m.TaxPercent,
		m.TaxableValue,
		m.TotalAmount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update line item "+m.LineItemID)
	}
	return requireAffected(tag)
}

// DeleteLineItem deletes one line item of a GRN.
func (r *PgxGRNRepository) DeleteLineItem(ctx context.Context, grnID, lineItemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM grn_line_items WHERE line_item_id = $1 AND grn_id = $2;`, lineItemID, grnID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete line item "+lineItemID, err)
	}
	return requireAffected(tag)
}

// DeleteLineItemsByGRNID deletes every line item of a GRN. Deleting none is not an error.
func (r *PgxGRNRepository) DeleteLineItemsByGRNID(ctx context.Context, grnID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM grn_line_items WHERE grn_id = $1;`, grnID); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete line items for grn "+grnID, err)
	}
	return nil
}

// NextGRNSequence reserves the next sequence of period. The counter row stays locked
// until the surrounding transaction ends, so concurrent creators queue behind it.
// The result also exceeds every number already stored for the period, which covers
// rows written before the counter existed and caller-supplied numbers.
func (r *PgxGRNRepository) NextGRNSequence(ctx context.Context, period string) (int, error) {
	if !periodPattern.MatchString(period) {
		return 0, apperrors.Validationf("invalid grn period %q", period)
	}

	_, err := r.db.Exec(ctx, `INSERT INTO grn_sequences (period, last_value) VALUES ($1, 0) ON CONFLICT (period) DO NOTHING;`, period)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to seed grn sequence for "+period, err)
	}

	var counter int
	if err := r.db.QueryRow(ctx, `SELECT last_value FROM grn_sequences WHERE period = $1 FOR UPDATE;`, period).Scan(&counter); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to lock grn sequence for "+period, err)
	}

	highest, err := r.highestExistingSequence(ctx, period)
	if err != nil {
		return 0, err
	}

	next := domain.NextSequence(counter, highest)
	if next > domain.MaxGRNSequence {
		return 0, apperrors.NewAppError(http.StatusConflict, "grn sequence exhausted for "+period, apperrors.ErrConflict)
	}
	if _, err := r.db.Exec(ctx, `UPDATE grn_sequences SET last_value = $2 WHERE period = $1;`, period, next); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to advance grn sequence for "+period, err)
	}
	return next, nil
}

// highestExistingSequence finds the greatest allocatable suffix among stored numbers
// of period. Suffixes that do not parse or exceed domain.MaxGRNSequence are skipped,
// so an oversized caller-supplied number cannot block allocation.
func (r *PgxGRNRepository) highestExistingSequence(ctx context.Context, period string) (int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT grn_number FROM grns WHERE grn_number LIKE $1;`,
		domain.PeriodPrefix(period)+"%",
	)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to find latest grn number for "+period, err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to read grn numbers for "+period, err)
	}
	return domain.HighestSequence(period, numbers), nil
}

// ListRegisterRows returns the flattened register, latest GRN date first.
func (r *PgxGRNRepository) ListRegisterRows(ctx context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error) {
	f := &filterBuilder{}
	if filter.StartDate != nil {
		f.add("g.grn_date >= ?", startOfDay(*filter.StartDate))
	}
	if filter.EndDate != nil {
		f.add("g.grn_date < ?", startOfDay(*filter.EndDate).AddDate(0, 0, 1))
	}
	if filter.VendorID != "" {
		f.add("g.vendor_id = ?", filter.VendorID)
	}
	if filter.BranchID != "" {
		f.add("g.branch_id = ?", filter.BranchID)
	}

	query := `
		SELECT g.grn_number, g.grn_date, g.invoice_number,
		       COALESCE(v.name, ''), COALESCE(b.name, ''), COALESCE(b.location, ''),
		       g.total_amount, g.total_tax, g.grand_total, g.status
		FROM grns g
		LEFT JOIN vendors v ON v.vendor_id = g.vendor_id
		LEFT JOIN branches b ON b.branch_id = g.branch_id` + f.where() + `
		ORDER BY g.grn_date DESC, g.grn_number DESC;`

	rows, err := r.db.Query(ctx, query, f.args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query grn register", err)
	}
	defer rows.Close()

	result := []domain.RegisterRow{}
	for rows.Next() {
		var row domain.RegisterRow
		var status string
		if err := rows.Scan(
			&row.GRNNumber,
			&row.GRNDate,
			&row.InvoiceNumber,
			&row.VendorName,
			&row.BranchName,
			&row.BranchLocation,
			&row.TotalAmount,
			&row.TotalTax,
			&row.GrandTotal,
			&status,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan grn register row", err)
		}
		row.Status = domain.GRNStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating grn register rows", err)
	}
	return result, nil
}
