package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

// --- Mock GRNService ---
type MockGRNService struct {
	mock.Mock
}

func (m *MockGRNService) GetGRNByID(ctx context.Context, grnID string) (*domain.GRN, error) {
	args := m.Called(ctx, grnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRN), args.Error(1)
}
func (m *MockGRNService) ListGRNs(ctx context.Context, query dto.ListGRNsQuery) ([]domain.GRN, pagination.Meta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]domain.GRN), args.Get(1).(pagination.Meta), args.Error(2)
}
func (m *MockGRNService) CreateGRN(ctx context.Context, req dto.CreateGRNRequest, creatorUserID string) (*domain.GRN, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRN), args.Error(1)
}
func (m *MockGRNService) UpdateGRN(ctx context.Context, grnID string, req dto.UpdateGRNRequest, userID string) (*domain.GRN, error) {
	args := m.Called(ctx, grnID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRN), args.Error(1)
}
func (m *MockGRNService) DeleteGRN(ctx context.Context, grnID string) error {
	return m.Called(ctx, grnID).Error(0)
}
func (m *MockGRNService) ReplaceLineItems(ctx context.Context, grnID string, items []dto.LineItemRequest, userID string) (*domain.GRN, error) {
	args := m.Called(ctx, grnID, items, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRN), args.Error(1)
}
func (m *MockGRNService) AddLineItem(ctx context.Context, grnID string, req dto.LineItemRequest, userID string) (*domain.GRNLineItem, error) {
	args := m.Called(ctx, grnID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRNLineItem), args.Error(1)
}
func (m *MockGRNService) UpdateLineItem(ctx context.Context, grnID, lineItemID string, req dto.LineItemRequest, userID string) (*domain.GRNLineItem, error) {
	args := m.Called(ctx, grnID, lineItemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GRNLineItem), args.Error(1)
}
func (m *MockGRNService) DeleteLineItem(ctx context.Context, grnID, lineItemID, userID string) error {
	return m.Called(ctx, grnID, lineItemID, userID).Error(0)
}
func (m *MockGRNService) RecalculateTotals(ctx context.Context, grnID string) (domain.GRNTotals, error) {
	args := m.Called(ctx, grnID)
	return args.Get(0).(domain.GRNTotals), args.Error(1)
}
func (m *MockGRNService) RecalculateAllTotals(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.GRNSvcFacade = (*MockGRNService)(nil)

// --- Mock RegisterService ---
type MockRegisterService struct {
	mock.Mock
}

func (m *MockRegisterService) GenerateRegister(ctx context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisterRow), args.Error(1)
}
func (m *MockRegisterService) ExportRegister(ctx context.Context, filter domain.RegisterFilter) ([]byte, string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ portssvc.RegisterSvc = (*MockRegisterService)(nil)

// --- Mock VendorService ---
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) ListVendors(ctx context.Context, query dto.ListQuery) ([]domain.Vendor, pagination.Meta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]domain.Vendor), args.Get(1).(pagination.Meta), args.Error(2)
}
func (m *MockVendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	return m.Called(ctx, vendorID).Error(0)
}

var _ portssvc.VendorSvc = (*MockVendorService)(nil)

// --- Mock AssetCategoryService ---
type MockAssetCategoryService struct {
	mock.Mock
}

func (m *MockAssetCategoryService) CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest, creatorUserID string) (*domain.AssetCategory, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetCategory), args.Error(1)
}
func (m *MockAssetCategoryService) GetAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetCategory), args.Error(1)
}
func (m *MockAssetCategoryService) ListAssetCategories(ctx context.Context, query dto.ListQuery) ([]domain.AssetCategory, pagination.Meta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]domain.AssetCategory), args.Get(1).(pagination.Meta), args.Error(2)
}
func (m *MockAssetCategoryService) UpdateAssetCategory(ctx context.Context, categoryID string, req dto.UpdateAssetCategoryRequest, userID string) (*domain.AssetCategory, error) {
	args := m.Called(ctx, categoryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetCategory), args.Error(1)
}
func (m *MockAssetCategoryService) DeleteAssetCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}
func (m *MockAssetCategoryService) ExportAssetCategories(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
func (m *MockAssetCategoryService) ImportAssetCategories(ctx context.Context, r io.Reader, creatorUserID string) (int, error) {
	args := m.Called(ctx, r, creatorUserID)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AssetCategorySvc = (*MockAssetCategoryService)(nil)
