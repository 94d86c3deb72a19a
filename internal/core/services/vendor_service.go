package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/platform/validation"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

// parseMasterStatus defaults an empty status to active.
func parseMasterStatus(raw string) (domain.MasterStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.StatusActive, nil
	}
	status := domain.MasterStatus(raw)
	if !status.IsValid() {
		return "", apperrors.Validationf("unknown status %q", raw)
	}
	return status, nil
}

// masterListParams normalizes a master data list query.
func (s *BaseService) masterListParams(q dto.ListQuery) (domain.ListParams, pagination.Params, error) {
	page := s.PageParams(q)
	status := strings.TrimSpace(q.Status)
	if status != "" && !domain.MasterStatus(status).IsValid() {
		return domain.ListParams{}, page, apperrors.Validationf("unknown status %q", status)
	}
	return domain.ListParams{
		Page:   page.Page,
		Limit:  page.Limit,
		Search: strings.TrimSpace(q.Search),
		Status: status,
	}, page, nil
}

type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new vendor service.
func NewVendorService(repo portsrepo.VendorRepositoryFacade, options ...ServiceOption) portssvc.VendorSvc {
	return &vendorService{BaseService: newBaseService(options), vendorRepo: repo}
}

var _ portssvc.VendorSvc = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	status, err := parseMasterStatus(req.Status)
	if err != nil {
		return nil, err
	}

	vendor := domain.Vendor{
		VendorID:      uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		GSTNumber:     strings.TrimSpace(req.GSTNumber),
		Status:        status,
		AuditFields:   domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if vendor.Name == "" {
		return nil, apperrors.Validationf("name is required")
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to save vendor", slog.String("vendor_name", vendor.Name))
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	s.LogInfo(ctx, "Vendor created successfully", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find vendor", slog.String("vendor_id", vendorID))
		}
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, query dto.ListQuery) ([]domain.Vendor, pagination.Meta, error) {
	params, page, err := s.masterListParams(query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	vendors, total, err := s.vendorRepo.ListVendors(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, pagination.Meta{}, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, pagination.NewMeta(page, total), nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if vendor.Name, err = requiredTrimmed("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactPerson != nil {
		if vendor.ContactPerson, err = requiredTrimmed("contactPerson", *req.ContactPerson); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		vendor.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		if vendor.Phone, err = requiredTrimmed("phone", *req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if vendor.Address, err = requiredTrimmed("address", *req.Address); err != nil {
			return nil, err
		}
	}
	if req.GSTNumber != nil {
		vendor.GSTNumber = strings.TrimSpace(*req.GSTNumber)
	}
	if req.Status != nil {
		if vendor.Status, err = parseMasterStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	vendor.Touch(userID, s.Now())

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		s.LogError(ctx, err, "Failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete vendor", slog.String("vendor_id", vendorID))
		}
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	s.LogInfo(ctx, "Vendor deleted", slog.String("vendor_id", vendorID))
	return nil
}
