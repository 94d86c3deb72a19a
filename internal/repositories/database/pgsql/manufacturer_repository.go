package pgsql

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxManufacturerRepository struct {
	BaseRepository
}

// newPgxManufacturerRepository creates a new repository for manufacturer data.
func newPgxManufacturerRepository(pool *pgxpool.Pool) portsrepo.ManufacturerRepositoryFacade {
	return &PgxManufacturerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ManufacturerRepositoryFacade = (*PgxManufacturerRepository)(nil)

const manufacturerSelectColumns = `
SELECT manufacturer_id, name, description, status,
       created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxManufacturerRepository) SaveManufacturer(ctx context.Context, m domain.Manufacturer) error {
	query := `
		INSERT INTO manufacturers (
			manufacturer_id, name, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ManufacturerID, m.Name, m.Description, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to save manufacturer "+m.Name)
	}
	return nil
}

func (r *PgxManufacturerRepository) FindManufacturerByID(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error) {
	return collectOne[domain.Manufacturer](ctx, r.Pool, manufacturerSelectColumns+` FROM manufacturers WHERE manufacturer_id = $1;`, manufacturerID)
}

func (r *PgxManufacturerRepository) ListManufacturers(ctx context.Context, params domain.ListParams) ([]domain.Manufacturer, int, error) {
	f := &filterBuilder{}
	f.addSearch(params.Search, "name", "description")
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}
	return collectPage[domain.Manufacturer](ctx, r.Pool, manufacturerSelectColumns, "FROM manufacturers", f, "name, manufacturer_id", params)
}

func (r *PgxManufacturerRepository) UpdateManufacturer(ctx context.Context, m domain.Manufacturer) error {
	query := `
		UPDATE manufacturers
		SET name = $2, description = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE manufacturer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ManufacturerID, m.Name, m.Description, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update manufacturer "+m.ManufacturerID)
	}
	return requireAffected(tag)
}

func (r *PgxManufacturerRepository) DeleteManufacturer(ctx context.Context, manufacturerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM manufacturers WHERE manufacturer_id = $1;`, manufacturerID)
	if err != nil {
		return mapDeleteError(err, "failed to delete manufacturer "+manufacturerID)
	}
	return requireAffected(tag)
}
