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

type manufacturerService struct {
	BaseService
	manufacturerRepo portsrepo.ManufacturerRepositoryFacade
}

// NewManufacturerService creates a new manufacturer service.
func NewManufacturerService(repo portsrepo.ManufacturerRepositoryFacade, options ...ServiceOption) portssvc.ManufacturerSvc {
	return &manufacturerService{BaseService: newBaseService(options), manufacturerRepo: repo}
}

var _ portssvc.ManufacturerSvc = (*manufacturerService)(nil)

func (s *manufacturerService) CreateManufacturer(ctx context.Context, req dto.CreateManufacturerRequest, creatorUserID string) (*domain.Manufacturer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	status, err := parseMasterStatus(req.Status)
	if err != nil {
		return nil, err
	}
	name, err := requiredTrimmed("name", req.Name)
	if err != nil {
		return nil, err
	}

	manufacturer := domain.Manufacturer{
		ManufacturerID: uuid.NewString(),
		Name:           name,
		Description:    strings.TrimSpace(req.Description),
		Status:         status,
		AuditFields:    domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if err := s.manufacturerRepo.SaveManufacturer(ctx, manufacturer); err != nil {
		s.LogError(ctx, err, "Failed to save manufacturer", slog.String("manufacturer_name", name))
		return nil, fmt.Errorf("failed to create manufacturer: %w", err)
	}
	s.LogInfo(ctx, "Manufacturer created successfully", slog.String("manufacturer_id", manufacturer.ManufacturerID))
	return &manufacturer, nil
}

func (s *manufacturerService) GetManufacturerByID(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.FindManufacturerByID(ctx, manufacturerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find manufacturer", slog.String("manufacturer_id", manufacturerID))
		}
		return nil, err
	}
	return manufacturer, nil
}

func (s *manufacturerService) ListManufacturers(ctx context.Context, query dto.ListQuery) ([]domain.Manufacturer, pagination.Meta, error) {
	params, page, err := s.masterListParams(query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	manufacturers, total, err := s.manufacturerRepo.ListManufacturers(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list manufacturers")
		return nil, pagination.Meta{}, fmt.Errorf("failed to list manufacturers: %w", err)
	}
	return manufacturers, pagination.NewMeta(page, total), nil
}

func (s *manufacturerService) UpdateManufacturer(ctx context.Context, manufacturerID string, req dto.UpdateManufacturerRequest, userID string) (*domain.Manufacturer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	manufacturer, err := s.manufacturerRepo.FindManufacturerByID(ctx, manufacturerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if manufacturer.Name, err = requiredTrimmed("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		manufacturer.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		if manufacturer.Status, err = parseMasterStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	manufacturer.Touch(userID, s.Now())

	if err := s.manufacturerRepo.UpdateManufacturer(ctx, *manufacturer); err != nil {
		s.LogError(ctx, err, "Failed to update manufacturer", slog.String("manufacturer_id", manufacturerID))
		return nil, fmt.Errorf("failed to update manufacturer: %w", err)
	}
	return manufacturer, nil
}

func (s *manufacturerService) DeleteManufacturer(ctx context.Context, manufacturerID string) error {
	if err := s.manufacturerRepo.DeleteManufacturer(ctx, manufacturerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete manufacturer", slog.String("manufacturer_id", manufacturerID))
		}
		return fmt.Errorf("failed to delete manufacturer %s: %w", manufacturerID, err)
	}
	return nil
}
