package pgsql

import (
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		GRNRepo:              newPgxGRNRepository(dbPool),
		VendorRepo:           newPgxVendorRepository(dbPool),
		BranchRepo:           newPgxBranchRepository(dbPool),
		ManufacturerRepo:     newPgxManufacturerRepository(dbPool),
		AssetCategoryRepo:    newPgxAssetCategoryRepository(dbPool),
		AssetSubcategoryRepo: newPgxAssetSubcategoryRepository(dbPool),
	}
}
