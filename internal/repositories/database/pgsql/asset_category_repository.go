package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetCategoryRepository struct {
	BaseRepository
}

// newPgxAssetCategoryRepository creates a new repository for asset category data.
func newPgxAssetCategoryRepository(pool *pgxpool.Pool) portsrepo.AssetCategoryRepositoryFacade {
	return &PgxAssetCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetCategoryRepositoryFacade = (*PgxAssetCategoryRepository)(nil)

const (
	assetCategorySelectColumns = `
SELECT category_id, name, description, status,
       created_at, created_by, last_updated_at, last_updated_by`

	assetCategoryInsertQuery = `
		INSERT INTO asset_categories (
			category_id, name, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
)

func assetCategoryArgs(c domain.AssetCategory) []any {
	return []any{
		c.CategoryID, c.Name, c.Description, c.Status,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	}
}

func (r *PgxAssetCategoryRepository) SaveAssetCategory(ctx context.Context, c domain.AssetCategory) error {
	if _, err := r.Pool.Exec(ctx, assetCategoryInsertQuery, assetCategoryArgs(c)...); err != nil {
		return mapWriteError(err, "failed to save asset category "+c.Name)
	}
	return nil
}

// SaveAssetCategories inserts all categories in one transaction using a batch.
func (r *PgxAssetCategoryRepository) SaveAssetCategories(ctx context.Context, categories []domain.AssetCategory) error {
	if len(categories) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(assetCategoryInsertQuery, assetCategoryArgs(c)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "failed to import asset categories")
	}
	return r.Commit(ctx, tx)
}

func (r *PgxAssetCategoryRepository) FindAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	return collectOne[domain.AssetCategory](ctx, r.Pool, assetCategorySelectColumns+` FROM asset_categories WHERE category_id = $1;`, categoryID)
}

func (r *PgxAssetCategoryRepository) ListAssetCategories(ctx context.Context, params domain.ListParams) ([]domain.AssetCategory, int, error) {
	f := &filterBuilder{}
	f.addSearch(params.Search, "name", "description")
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}
	return collectPage[domain.AssetCategory](ctx, r.Pool, assetCategorySelectColumns, "FROM asset_categories", f, "name, category_id", params)
}

// ListAllAssetCategories returns every category ordered by name, for export.
func (r *PgxAssetCategoryRepository) ListAllAssetCategories(ctx context.Context) ([]domain.AssetCategory, error) {
	rows, err := r.Pool.Query(ctx, assetCategorySelectColumns+` FROM asset_categories ORDER BY name, category_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query asset categories", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AssetCategory])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect asset category rows", err)
	}
	return categories, nil
}

func (r *PgxAssetCategoryRepository) UpdateAssetCategory(ctx context.Context, c domain.AssetCategory) error {
	query := `
		UPDATE asset_categories
		SET name = $2, description = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, c.CategoryID, c.Name, c.Description, c.Status, c.LastUpdatedAt, c.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "failed to update asset category "+c.CategoryID)
	}
	return requireAffected(tag)
}

func (r *PgxAssetCategoryRepository) DeleteAssetCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM asset_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return mapDeleteError(err, "failed to delete asset category "+categoryID)
	}
	return requireAffected(tag)
}
