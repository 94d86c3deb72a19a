package pgsql

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetSubcategoryRepository struct {
	BaseRepository
}

// newPgxAssetSubcategoryRepository creates a new repository for asset subcategory data.
func newPgxAssetSubcategoryRepository(pool *pgxpool.Pool) portsrepo.AssetSubcategoryRepositoryFacade {
	return &PgxAssetSubcategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetSubcategoryRepositoryFacade = (*PgxAssetSubcategoryRepository)(nil)

const (
	assetSubcategorySelectColumns = `
SELECT s.subcategory_id, s.category_id, s.name, s.description, s.status,
       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
       COALESCE(c.name, '') AS category_name`

	assetSubcategoryFrom = `FROM asset_subcategories s LEFT JOIN asset_categories c ON c.category_id = s.category_id`
)

func (r *PgxAssetSubcategoryRepository) SaveAssetSubcategory(ctx context.Context, s domain.AssetSubcategory) error {
	query := `
		INSERT INTO asset_subcategories (
			subcategory_id, category_id, name, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		s.SubcategoryID, s.CategoryID, s.Name, s.Description, s.Status,
		s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to save asset subcategory "+s.Name)
	}
	return nil
}

func (r *PgxAssetSubcategoryRepository) FindAssetSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.AssetSubcategory, error) {
	return collectOne[domain.AssetSubcategory](ctx, r.Pool, assetSubcategorySelectColumns+" "+assetSubcategoryFrom+` WHERE s.subcategory_id = $1;`, subcategoryID)
}

func (r *PgxAssetSubcategoryRepository) ListAssetSubcategories(ctx context.Context, params domain.SubcategoryListParams) ([]domain.AssetSubcategory, int, error) {
	f := &filterBuilder{}
	f.addSearch(params.Search, "s.name", "s.description")
	if params.Status != "" {
		f.add("s.status = ?", params.Status)
	}
	if params.CategoryID != "" {
		f.add("s.category_id = ?", params.CategoryID)
	}
	return collectPage[domain.AssetSubcategory](ctx, r.Pool, assetSubcategorySelectColumns, assetSubcategoryFrom, f, "s.name, s.subcategory_id", params.ListParams)
}

func (r *PgxAssetSubcategoryRepository) UpdateAssetSubcategory(ctx context.Context, s domain.AssetSubcategory) error {
	query := `
		UPDATE asset_subcategories
		SET category_id = $2, name = $3, description = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE subcategory_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		s.SubcategoryID, s.CategoryID, s.Name, s.Description, s.Status, s.LastUpdatedAt, s.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update asset subcategory "+s.SubcategoryID)
	}
	return requireAffected(tag)
}

func (r *PgxAssetSubcategoryRepository) DeleteAssetSubcategory(ctx context.Context, subcategoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM asset_subcategories WHERE subcategory_id = $1;`, subcategoryID)
	if err != nil {
		return mapDeleteError(err, "failed to delete asset subcategory "+subcategoryID)
	}
	return requireAffected(tag)
}
