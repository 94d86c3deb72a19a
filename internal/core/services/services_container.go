package services

import (
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, registerExporter portssvc.RegisterExporter, categoryWorkbook portssvc.CategoryWorkbook) *portssvc.ServiceContainer {
	options := []ServiceOption{WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize)}

	return &portssvc.ServiceContainer{
		GRN:              NewGRNService(repos.GRNRepo, options...),
		Register:         NewRegisterService(repos.GRNRepo, registerExporter, options...),
		Vendor:           NewVendorService(repos.VendorRepo, options...),
		Branch:           NewBranchService(repos.BranchRepo, options...),
		Manufacturer:     NewManufacturerService(repos.ManufacturerRepo, options...),
		AssetCategory:    NewAssetCategoryService(repos.AssetCategoryRepo, categoryWorkbook, options...),
		AssetSubcategory: NewAssetSubcategoryService(repos.AssetSubcategoryRepo, options...),
	}
}
