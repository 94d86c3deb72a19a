package services

import (
	"context"
	"io"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

// VendorSvc defines vendor master data operations
type VendorSvc interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, query dto.ListQuery) ([]domain.Vendor, pagination.Meta, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
}

// BranchSvc defines branch master data operations
type BranchSvc interface {
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error)
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, query dto.ListQuery) ([]domain.Branch, pagination.Meta, error)
	UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, userID string) (*domain.Branch, error)
	DeleteBranch(ctx context.Context, branchID string) error
}

// ManufacturerSvc defines manufacturer master data operations
type ManufacturerSvc interface {
	CreateManufacturer(ctx context.Context, req dto.CreateManufacturerRequest, creatorUserID string) (*domain.Manufacturer, error)
	GetManufacturerByID(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error)
	ListManufacturers(ctx context.Context, query dto.ListQuery) ([]domain.Manufacturer, pagination.Meta, error)
	UpdateManufacturer(ctx context.Context, manufacturerID string, req dto.UpdateManufacturerRequest, userID string) (*domain.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, manufacturerID string) error
}

// AssetCategorySvc defines asset category operations, including spreadsheet exchange
type AssetCategorySvc interface {
	CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest, creatorUserID string) (*domain.AssetCategory, error)
	GetAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error)
	ListAssetCategories(ctx context.Context, query dto.ListQuery) ([]domain.AssetCategory, pagination.Meta, error)
	UpdateAssetCategory(ctx context.Context, categoryID string, req dto.UpdateAssetCategoryRequest, userID string) (*domain.AssetCategory, error)
	DeleteAssetCategory(ctx context.Context, categoryID string) error

	// ExportAssetCategories renders every category as a spreadsheet and returns it with a file name.
	ExportAssetCategories(ctx context.Context) ([]byte, string, error)

	// ImportAssetCategories creates one category per spreadsheet row, all or nothing.
	ImportAssetCategories(ctx context.Context, r io.Reader, creatorUserID string) (int, error)
}

// AssetSubcategorySvc defines asset subcategory operations
type AssetSubcategorySvc interface {
	CreateAssetSubcategory(ctx context.Context, req dto.CreateAssetSubcategoryRequest, creatorUserID string) (*domain.AssetSubcategory, error)
	GetAssetSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.AssetSubcategory, error)
	ListAssetSubcategories(ctx context.Context, query dto.ListSubcategoriesQuery) ([]domain.AssetSubcategory, pagination.Meta, error)
	UpdateAssetSubcategory(ctx context.Context, subcategoryID string, req dto.UpdateAssetSubcategoryRequest, userID string) (*domain.AssetSubcategory, error)
	DeleteAssetSubcategory(ctx context.Context, subcategoryID string) error
}
