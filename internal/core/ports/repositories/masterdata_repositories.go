package repositories

import (
	"context"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
)

// VendorRepositoryFacade defines persistence operations for vendors
type VendorRepositoryFacade interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, params domain.ListParams) ([]domain.Vendor, int, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	DeleteVendor(ctx context.Context, vendorID string) error
}

// BranchRepositoryFacade defines persistence operations for branches
type BranchRepositoryFacade interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, params domain.ListParams) ([]domain.Branch, int, error)
	UpdateBranch(ctx context.Context, branch domain.Branch) error
	DeleteBranch(ctx context.Context, branchID string) error
}

// ManufacturerRepositoryFacade defines persistence operations for manufacturers
type ManufacturerRepositoryFacade interface {
	SaveManufacturer(ctx context.Context, manufacturer domain.Manufacturer) error
	FindManufacturerByID(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error)
	ListManufacturers(ctx context.Context, params domain.ListParams) ([]domain.Manufacturer, int, error)
	UpdateManufacturer(ctx context.Context, manufacturer domain.Manufacturer) error
	DeleteManufacturer(ctx context.Context, manufacturerID string) error
}

// AssetCategoryRepositoryFacade defines persistence operations for asset categories
type AssetCategoryRepositoryFacade interface {
	SaveAssetCategory(ctx context.Context, category domain.AssetCategory) error
	// SaveAssetCategories inserts all categories in one transaction; any failure inserts none.
	SaveAssetCategories(ctx context.Context, categories []domain.AssetCategory) error
	FindAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error)
	ListAssetCategories(ctx context.Context, params domain.ListParams) ([]domain.AssetCategory, int, error)
	ListAllAssetCategories(ctx context.Context) ([]domain.AssetCategory, error)
	UpdateAssetCategory(ctx context.Context, category domain.AssetCategory) error
	DeleteAssetCategory(ctx context.Context, categoryID string) error
}

// AssetSubcategoryRepositoryFacade defines persistence operations for asset subcategories
type AssetSubcategoryRepositoryFacade interface {
	SaveAssetSubcategory(ctx context.Context, subcategory domain.AssetSubcategory) error
	FindAssetSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.AssetSubcategory, error)
	ListAssetSubcategories(ctx context.Context, params domain.SubcategoryListParams) ([]domain.AssetSubcategory, int, error)
	UpdateAssetSubcategory(ctx context.Context, subcategory domain.AssetSubcategory) error
	DeleteAssetSubcategory(ctx context.Context, subcategoryID string) error
}
