package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
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

type assetCategoryService struct {
	BaseService
	categoryRepo portsrepo.AssetCategoryRepositoryFacade
	workbook     portssvc.CategoryWorkbook
}

// NewAssetCategoryService creates the asset category service. workbook handles
// the spreadsheet export and import.
func NewAssetCategoryService(repo portsrepo.AssetCategoryRepositoryFacade, workbook portssvc.CategoryWorkbook, options ...ServiceOption) portssvc.AssetCategorySvc {
	return &assetCategoryService{
		BaseService:  newBaseService(options),
		categoryRepo: repo,
		workbook:     workbook,
	}
}

var _ portssvc.AssetCategorySvc = (*assetCategoryService)(nil)

func (s *assetCategoryService) CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest, creatorUserID string) (*domain.AssetCategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	category, err := s.newCategory(req, creatorUserID)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.SaveAssetCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save asset category", slog.String("category_name", category.Name))
		return nil, fmt.Errorf("failed to create asset category: %w", err)
	}
	s.LogInfo(ctx, "Asset category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *assetCategoryService) newCategory(req dto.CreateAssetCategoryRequest, creatorUserID string) (domain.AssetCategory, error) {
	name, err := requiredTrimmed("name", req.Name)
	if err != nil {
		return domain.AssetCategory{}, err
	}
	status, err := parseMasterStatus(req.Status)
	if err != nil {
		return domain.AssetCategory{}, err
	}
	return domain.AssetCategory{
		CategoryID:  uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		AuditFields: domain.NewAuditFields(creatorUserID, s.Now()),
	}, nil
}

func (s *assetCategoryService) GetAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	category, err := s.categoryRepo.FindAssetCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *assetCategoryService) ListAssetCategories(ctx context.Context, query dto.ListQuery) ([]domain.AssetCategory, pagination.Meta, error) {
	params, page, err := s.masterListParams(query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	categories, total, err := s.categoryRepo.ListAssetCategories(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list asset categories")
		return nil, pagination.Meta{}, fmt.Errorf("failed to list asset categories: %w", err)
	}
	return categories, pagination.NewMeta(page, total), nil
}

func (s *assetCategoryService) UpdateAssetCategory(ctx context.Context, categoryID string, req dto.UpdateAssetCategoryRequest, userID string) (*domain.AssetCategory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindAssetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if category.Name, err = requiredTrimmed("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		if category.Status, err = parseMasterStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	category.Touch(userID, s.Now())

	if err := s.categoryRepo.UpdateAssetCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update asset category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update asset category: %w", err)
	}
	return category, nil
}

func (s *assetCategoryService) DeleteAssetCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteAssetCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete asset category", slog.String("category_id", categoryID))
		}
		return fmt.Errorf("failed to delete asset category %s: %w", categoryID, err)
	}
	return nil
}

func (s *assetCategoryService) ExportAssetCategories(ctx context.Context) ([]byte, string, error) {
	categories, err := s.categoryRepo.ListAllAssetCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load asset categories for export")
		return nil, "", fmt.Errorf("failed to load asset categories: %w", err)
	}
	var buf bytes.Buffer
	if err := s.workbook.WriteCategories(&buf, categories); err != nil {
		s.LogError(ctx, err, "Failed to render asset category workbook")
		return nil, "", fmt.Errorf("failed to render asset categories: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("asset_categories_%d.xlsx", s.Now().Unix()), nil
}

func (s *assetCategoryService) ImportAssetCategories(ctx context.Context, r io.Reader, creatorUserID string) (int, error) {
	parsed, err := s.workbook.ReadCategories(r)
	if err != nil {
		return 0, err
	}
	if len(parsed) == 0 {
		return 0, apperrors.Validationf("workbook contains no categories")
	}

	categories := make([]domain.AssetCategory, 0, len(parsed))
	for i, row := range parsed {
		req := dto.CreateAssetCategoryRequest{
			Name:        row.Name,
			Description: row.Description,
			Status:      string(row.Status),
		}
		if err := validation.Struct(req); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		category, err := s.newCategory(req, creatorUserID)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		categories = append(categories, category)
	}

	if err := s.categoryRepo.SaveAssetCategories(ctx, categories); err != nil {
		s.LogError(ctx, err, "Failed to import asset categories", slog.Int("rows", len(categories)))
		return 0, fmt.Errorf("failed to import asset categories: %w", err)
	}
	s.LogInfo(ctx, "Asset categories imported", slog.Int("rows", len(categories)))
	return len(categories), nil
}
