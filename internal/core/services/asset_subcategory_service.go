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

type assetSubcategoryService struct {
	BaseService
	subcategoryRepo portsrepo.AssetSubcategoryRepositoryFacade
}

// NewAssetSubcategoryService creates a new asset subcategory service.
func NewAssetSubcategoryService(repo portsrepo.AssetSubcategoryRepositoryFacade, options ...ServiceOption) portssvc.AssetSubcategorySvc {
	return &assetSubcategoryService{BaseService: newBaseService(options), subcategoryRepo: repo}
}

var _ portssvc.AssetSubcategorySvc = (*assetSubcategoryService)(nil)

func (s *assetSubcategoryService) CreateAssetSubcategory(ctx context.Context, req dto.CreateAssetSubcategoryRequest, creatorUserID string) (*domain.AssetSubcategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	status, err := parseMasterStatus(req.Status)
	if err != nil {
		return nil, err
	}
	subcategory := domain.AssetSubcategory{
		SubcategoryID: uuid.NewString(),
		Description:   strings.TrimSpace(req.Description),
		Status:        status,
		AuditFields:   domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if subcategory.CategoryID, err = requiredTrimmed("categoryID", req.CategoryID); err != nil {
		return nil, err
	}
	if subcategory.Name, err = requiredTrimmed("name", req.Name); err != nil {
		return nil, err
	}

	if err := s.subcategoryRepo.SaveAssetSubcategory(ctx, subcategory); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save asset subcategory", slog.String("category_id", subcategory.CategoryID))
		}
		return nil, fmt.Errorf("failed to create asset subcategory: %w", err)
	}
	s.LogInfo(ctx, "Asset subcategory created successfully", slog.String("subcategory_id", subcategory.SubcategoryID))
	return s.subcategoryRepo.FindAssetSubcategoryByID(ctx, subcategory.SubcategoryID)
}

func (s *assetSubcategoryService) GetAssetSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.AssetSubcategory, error) {
	subcategory, err := s.subcategoryRepo.FindAssetSubcategoryByID(ctx, subcategoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset subcategory", slog.String("subcategory_id", subcategoryID))
		}
		return nil, err
	}
	return subcategory, nil
}

func (s *assetSubcategoryService) ListAssetSubcategories(ctx context.Context, query dto.ListSubcategoriesQuery) ([]domain.AssetSubcategory, pagination.Meta, error) {
	params, page, err := s.masterListParams(query.ListQuery)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	subcategories, total, err := s.subcategoryRepo.ListAssetSubcategories(ctx, domain.SubcategoryListParams{
		ListParams: params,
		CategoryID: strings.TrimSpace(query.CategoryID),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list asset subcategories")
		return nil, pagination.Meta{}, fmt.Errorf("failed to list asset subcategories: %w", err)
	}
	return subcategories, pagination.NewMeta(page, total), nil
}

func (s *assetSubcategoryService) UpdateAssetSubcategory(ctx context.Context, subcategoryID string, req dto.UpdateAssetSubcategoryRequest, userID string) (*domain.AssetSubcategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	subcategory, err := s.subcategoryRepo.FindAssetSubcategoryByID(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if subcategory.CategoryID, err = requiredTrimmed("categoryID", *req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.Name != nil {
		if subcategory.Name, err = requiredTrimmed("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		subcategory.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		if subcategory.Status, err = parseMasterStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	subcategory.Touch(userID, s.Now())

	if err := s.subcategoryRepo.UpdateAssetSubcategory(ctx, *subcategory); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update asset subcategory", slog.String("subcategory_id", subcategoryID))
		}
		return nil, fmt.Errorf("failed to update asset subcategory: %w", err)
	}
	return s.subcategoryRepo.FindAssetSubcategoryByID(ctx, subcategoryID)
}

func (s *assetSubcategoryService) DeleteAssetSubcategory(ctx context.Context, subcategoryID string) error {
	if err := s.subcategoryRepo.DeleteAssetSubcategory(ctx, subcategoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete asset subcategory", slog.String("subcategory_id", subcategoryID))
		}
		return fmt.Errorf("failed to delete asset subcategory %s: %w", subcategoryID, err)
	}
	return nil
}
