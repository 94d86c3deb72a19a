package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/platform/validation"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new branch service.
func NewBranchService(repo portsrepo.BranchRepositoryFacade, options ...ServiceOption) portssvc.BranchSvc {
	return &branchService{BaseService: newBaseService(options), branchRepo: repo}
}

var _ portssvc.BranchSvc = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	status, err := parseMasterStatus(req.Status)
	if err != nil {
		return nil, err
	}

	branch := domain.Branch{
		BranchID:    uuid.NewString(),
		Status:      status,
		AuditFields: domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if branch.Name, err = requiredTrimmed("name", req.Name); err != nil {
		return nil, err
	}
	if branch.Location, err = requiredTrimmed("location", req.Location); err != nil {
		return nil, err
	}
	if branch.Code, err = requiredTrimmed("code", req.Code); err != nil {
		return nil, err
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save branch", slog.String("branch_code", branch.Code))
		}
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	s.LogInfo(ctx, "Branch created successfully", slog.String("branch_id", branch.BranchID))
	return &branch, nil
}

func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find branch", slog.String("branch_id", branchID))
		}
		return nil, err
	}
	return branch, nil
}

func (s *branchService) ListBranches(ctx context.Context, query dto.ListQuery) ([]domain.Branch, pagination.Meta, error) {
	params, page, err := s.masterListParams(query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	branches, total, err := s.branchRepo.ListBranches(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list branches")
		return nil, pagination.Meta{}, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, pagination.NewMeta(page, total), nil
}

func (s *branchService) UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, userID string) (*domain.Branch, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if branch.Name, err = requiredTrimmed("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		if branch.Location, err = requiredTrimmed("location", *req.Location); err != nil {
			return nil, err
		}
	}
	if req.Code != nil {
		if branch.Code, err = requiredTrimmed("code", *req.Code); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if branch.Status, err = parseMasterStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	branch.Touch(userID, s.Now())

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update branch", slog.String("branch_id", branchID))
		}
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}

func (s *branchService) DeleteBranch(ctx context.Context, branchID string) error {
	if err := s.branchRepo.DeleteBranch(ctx, branchID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete branch", slog.String("branch_id", branchID))
		}
		return fmt.Errorf("failed to delete branch %s: %w", branchID, err)
	}
	s.LogInfo(ctx, "Branch deleted", slog.String("branch_id", branchID))
	return nil
}
