package pgsql

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBranchRepository struct {
	BaseRepository
}

// newPgxBranchRepository creates a new repository for branch data.
func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchSelectColumns = `
SELECT branch_id, name, location, code, status,
       created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, b domain.Branch) error {
	query := `
		INSERT INTO branches (
			branch_id, name, location, code, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		b.BranchID, b.Name, b.Location, b.Code, b.Status,
		b.CreatedAt, b.CreatedBy, b.LastUpdatedAt, b.LastUpdatedBy,
	)
	if err != nil {
		// code is unique
		return mapWriteError(err, "failed to save branch "+b.Code)
	}
	return nil
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	return collectOne[domain.Branch](ctx, r.Pool, branchSelectColumns+` FROM branches WHERE branch_id = $1;`, branchID)
}

func (r *PgxBranchRepository) ListBranches(ctx context.Context, params domain.ListParams) ([]domain.Branch, int, error) {
	f := &filterBuilder{}
	f.addSearch(params.Search, "name", "code", "location")
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}
	return collectPage[domain.Branch](ctx, r.Pool, branchSelectColumns, "FROM branches", f, "name, branch_id", params)
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, b domain.Branch) error {
	query := `
		UPDATE branches
		SET name = $2, location = $3, code = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE branch_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		b.BranchID, b.Name, b.Location, b.Code, b.Status, b.LastUpdatedAt, b.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update branch "+b.BranchID)
	}
	return requireAffected(tag)
}

func (r *PgxBranchRepository) DeleteBranch(ctx context.Context, branchID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM branches WHERE branch_id = $1;`, branchID)
	if err != nil {
		return mapDeleteError(err, "failed to delete branch "+branchID)
	}
	return requireAffected(tag)
}
