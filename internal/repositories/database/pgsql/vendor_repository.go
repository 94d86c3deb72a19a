package pgsql

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorSelectColumns = `
SELECT vendor_id, name, contact_person, email, phone, address, gst_number, status,
       created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, v domain.Vendor) error {
	query := `
		INSERT INTO vendors (
			vendor_id, name, contact_person, email, phone, address, gst_number, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		v.VendorID, v.Name, v.ContactPerson, v.Email, v.Phone, v.Address, v.GSTNumber, v.Status,
		v.CreatedAt, v.CreatedBy, v.LastUpdatedAt, v.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to save vendor "+v.Name)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return collectOne[domain.Vendor](ctx, r.Pool, vendorSelectColumns+` FROM vendors WHERE vendor_id = $1;`, vendorID)
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context, params domain.ListParams) ([]domain.Vendor, int, error) {
	f := &filterBuilder{}
	f.addSearch(params.Search, "name", "contact_person", "email")
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}
	return collectPage[domain.Vendor](ctx, r.Pool, vendorSelectColumns, "FROM vendors", f, "name, vendor_id", params)
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, v domain.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6, gst_number = $7,
		    status = $8, last_updated_at = $9, last_updated_by = $10
		WHERE vendor_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		v.VendorID, v.Name, v.ContactPerson, v.Email, v.Phone, v.Address, v.GSTNumber,
		v.Status, v.LastUpdatedAt, v.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update vendor "+v.VendorID)
	}
	return requireAffected(tag)
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return mapDeleteError(err, "failed to delete vendor "+vendorID)
	}
	return requireAffected(tag)
}
