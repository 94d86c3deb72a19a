package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	GRNRepo              GRNRepositoryWithTx
	VendorRepo           VendorRepositoryFacade
	BranchRepo           BranchRepositoryFacade
	ManufacturerRepo     ManufacturerRepositoryFacade
	AssetCategoryRepo    AssetCategoryRepositoryFacade
	AssetSubcategoryRepo AssetSubcategoryRepositoryFacade
}
