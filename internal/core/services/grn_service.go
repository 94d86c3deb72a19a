package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/platform/validation"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

// grnService manages the GRN lifecycle and keeps header totals in step with line items.
type grnService struct {
	BaseService
	grnRepo portsrepo.GRNRepositoryWithTx
}

// NewGRNService creates a new GRN service.
func NewGRNService(grnRepo portsrepo.GRNRepositoryWithTx, options ...ServiceOption) portssvc.GRNSvcFacade {
	return &grnService{
		BaseService: newBaseService(options),
		grnRepo:     grnRepo,
	}
}

// Ensure grnService implements the portssvc.GRNSvcFacade interface
var _ portssvc.GRNSvcFacade = (*grnService)(nil)

// allocateGRNNumber reserves the next number of the period containing now. It must
// run inside the transaction that saves the GRN so the counter row stays locked.
func (s *grnService) allocateGRNNumber(ctx context.Context, txRepo portsrepo.GRNRepositoryFacade, now time.Time) (string, error) {
	period := domain.PeriodKey(now)
	seq, err := txRepo.NextGRNSequence(ctx, period)
	if err != nil {
		return "", fmt.Errorf("failed to allocate grn number for period %s: %w", period, err)
	}
	return domain.FormatGRNNumber(period, seq), nil
}

// recalculateTotals loads every line item of the GRN, aggregates and persists the totals.
func (s *grnService) recalculateTotals(ctx context.Context, repo portsrepo.GRNRepositoryFacade, grnID string) (domain.GRNTotals, error) {
	items, err := repo.FindLineItemsByGRNID(ctx, grnID)
	if err != nil {
		return domain.GRNTotals{}, fmt.Errorf("failed to load line items: %w", err)
	}
	totals := domain.SumLineItems(items)
	if err := repo.UpdateGRNTotals(ctx, grnID, totals); err != nil {
		return domain.GRNTotals{}, fmt.Errorf("failed to persist totals: %w", err)
	}
	return totals, nil
}

func (s *grnService) loadGRN(ctx context.Context, grnID string) (*domain.GRN, error) {
	grn, err := s.grnRepo.FindGRNByID(ctx, grnID)
	if err != nil {
		return nil, err
	}
	items, err := s.grnRepo.FindLineItemsByGRNID(ctx, grnID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items of grn %s: %w", grnID, err)
	}
	grn.LineItems = items
	return grn, nil
}

// newLineItem validates req and builds a line item with its derived fields computed.
func newLineItem(grnID string, req dto.LineItemRequest, userID string, now time.Time) (domain.GRNLineItem, error) {
	if err := validation.Struct(req); err != nil {
		return domain.GRNLineItem{}, err
	}
	item := domain.GRNLineItem{
		LineItemID:  uuid.NewString(),
		GRNID:       grnID,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := applyLineItemRequest(&item, req); err != nil {
		return domain.GRNLineItem{}, err
	}
	return item, nil
}

// applyLineItemRequest copies the caller-owned fields of req onto item and recomputes it.
func applyLineItemRequest(item *domain.GRNLineItem, req dto.LineItemRequest) error {
	subcategoryID := strings.TrimSpace(req.SubcategoryID)
	if subcategoryID == "" {
		return apperrors.Validationf("subcategoryID is required")
	}
	description := strings.TrimSpace(req.ItemDescription)
	if description == "" {
		return apperrors.Validationf("itemDescription is required")
	}
	if req.UnitPrice == nil {
		return apperrors.Validationf("unitPrice is required")
	}
	item.SubcategoryID = subcategoryID
	item.ItemDescription = description
	item.Quantity = req.Quantity
	item.UnitPrice = *req.UnitPrice
	item.TaxPercent = req.TaxPercent
	item.Recalculate()
	return nil
}

func buildLineItems(grnID string, reqs []dto.LineItemRequest, userID string, now time.Time) ([]domain.GRNLineItem, error) {
	items := make([]domain.GRNLineItem, 0, len(reqs))
	for i, req := range reqs {
		item, err := newLineItem(grnID, req, userID, now)
		if err != nil {
			return nil, fmt.Errorf("line item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseGRNStatus(raw string) (domain.GRNStatus, error) {
	status := domain.GRNStatus(strings.TrimSpace(raw))
	if !status.IsValid() {
		return "", apperrors.Validationf("unknown grn status %q", raw)
	}
	return status, nil
}

func requiredTrimmed(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.Validationf("%s is required", field)
	}
	return value, nil
}

func (s *grnService) CreateGRN(ctx context.Context, req dto.CreateGRNRequest, creatorUserID string) (*domain.GRN, error) {
	logger := s.GetLogger(ctx)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	invoiceNumber, err := requiredTrimmed("invoiceNumber", req.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	vendorID, err := requiredTrimmed("vendorID", req.VendorID)
	if err != nil {
		return nil, err
	}
	branchID, err := requiredTrimmed("branchID", req.BranchID)
	if err != nil {
		return nil, err
	}
	status := domain.GRNDraft
	if req.Status != "" {
		if status, err = parseGRNStatus(req.Status); err != nil {
			return nil, err
		}
	}

	now := s.Now()
	grnDate := now
	if req.GRNDate != nil {
		grnDate = *req.GRNDate
	}

	grn := domain.GRN{
		GRNID:         uuid.NewString(),
		GRNNumber:     strings.TrimSpace(req.GRNNumber),
		GRNDate:       grnDate,
		InvoiceNumber: invoiceNumber,
		VendorID:      vendorID,
		BranchID:      branchID,
		Status:        status,
		Remarks:       strings.TrimSpace(req.Remarks),
		AuditFields:   domain.NewAuditFields(creatorUserID, now),
	}

	items, err := buildLineItems(grn.GRNID, req.LineItems, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	err = s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		if grn.GRNNumber == "" {
			number, err := s.allocateGRNNumber(ctx, txRepo, now)
			if err != nil {
				return err
			}
			grn.GRNNumber = number
		}
		if err := txRepo.SaveGRN(ctx, grn); err != nil {
			return fmt.Errorf("failed to save grn: %w", err)
		}
		if len(items) > 0 {
			if err := txRepo.SaveLineItems(ctx, items); err != nil {
				return fmt.Errorf("failed to save line items: %w", err)
			}
		}
		_, err := s.recalculateTotals(ctx, txRepo, grn.GRNID)
		return err
	})
	if err != nil {
		logger.Error("Failed to create GRN", slog.String("error", err.Error()), slog.String("grn_number", grn.GRNNumber))
		return nil, fmt.Errorf("failed to create grn: %w", err)
	}

	logger.Info("GRN created successfully", slog.String("grn_id", grn.GRNID), slog.String("grn_number", grn.GRNNumber), slog.Int("line_items", len(items)))
	return s.loadGRN(ctx, grn.GRNID)
}

func (s *grnService) GetGRNByID(ctx context.Context, grnID string) (*domain.GRN, error) {
	grn, err := s.loadGRN(ctx, grnID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find GRN", slog.String("grn_id", grnID))
		}
		return nil, err
	}
	return grn, nil
}

func (s *grnService) ListGRNs(ctx context.Context, query dto.ListGRNsQuery) ([]domain.GRN, pagination.Meta, error) {
	page := s.PageParams(query.ListQuery)

	if query.Status != "" {
		if _, err := parseGRNStatus(query.Status); err != nil {
			return nil, pagination.Meta{}, err
		}
	}
	if query.StartDate != nil && query.EndDate != nil && query.EndDate.Before(*query.StartDate) {
		return nil, pagination.Meta{}, apperrors.Validationf("endDate must not be before startDate")
	}

	filter := domain.GRNListFilter{
		ListParams: domain.ListParams{
			Page:   page.Page,
			Limit:  page.Limit,
			Search: strings.TrimSpace(query.Search),
			Status: strings.TrimSpace(query.Status),
		},
		VendorID:  strings.TrimSpace(query.VendorID),
		BranchID:  strings.TrimSpace(query.BranchID),
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	}

	grns, total, err := s.grnRepo.ListGRNs(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list GRNs")
		return nil, pagination.Meta{}, fmt.Errorf("failed to list grns: %w", err)
	}
	return grns, pagination.NewMeta(page, total), nil
}

// applyGRNUpdate copies the provided header fields of req onto grn.
func applyGRNUpdate(grn *domain.GRN, req dto.UpdateGRNRequest) error {
	var err error
	if req.GRNDate != nil {
		grn.GRNDate = *req.GRNDate
	}
	if req.InvoiceNumber != nil {
		if grn.InvoiceNumber, err = requiredTrimmed("invoiceNumber", *req.InvoiceNumber); err != nil {
			return err
		}
	}
	if req.VendorID != nil {
		if grn.VendorID, err = requiredTrimmed("vendorID", *req.VendorID); err != nil {
			return err
		}
	}
	if req.BranchID != nil {
		if grn.BranchID, err = requiredTrimmed("branchID", *req.BranchID); err != nil {
			return err
		}
	}
	if req.Status != nil {
		if grn.Status, err = parseGRNStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.Remarks != nil {
		grn.Remarks = strings.TrimSpace(*req.Remarks)
	}
	return nil
}

// replaceLineItems deletes the current items of the GRN and saves items in their place.
func replaceLineItems(ctx context.Context, txRepo portsrepo.GRNRepositoryFacade, grnID string, items []domain.GRNLineItem) error {
	if err := txRepo.DeleteLineItemsByGRNID(ctx, grnID); err != nil {
		return fmt.Errorf("failed to remove line items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	if err := txRepo.SaveLineItems(ctx, items); err != nil {
		return fmt.Errorf("failed to save line items: %w", err)
	}
	return nil
}

func (s *grnService) UpdateGRN(ctx context.Context, grnID string, req dto.UpdateGRNRequest, userID string) (*domain.GRN, error) {
	logger := s.GetLogger(ctx)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.Now()
	replace := req.LineItems != nil
	var items []domain.GRNLineItem
	if replace {
		var err error
		if items, err = buildLineItems(grnID, *req.LineItems, userID, now); err != nil {
			return nil, err
		}
	}

	err := s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		grn, err := txRepo.FindGRNByIDForUpdate(ctx, grnID)
		if err != nil {
			return err
		}
		if err := applyGRNUpdate(grn, req); err != nil {
			return err
		}
		grn.Touch(userID, now)
		if err := txRepo.UpdateGRN(ctx, *grn); err != nil {
			return fmt.Errorf("failed to update grn header: %w", err)
		}
		if replace {
			if err := replaceLineItems(ctx, txRepo, grnID, items); err != nil {
				return err
			}
		}
		_, err = s.recalculateTotals(ctx, txRepo, grnID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to update GRN", slog.String("error", err.Error()), slog.String("grn_id", grnID))
		}
		return nil, fmt.Errorf("failed to update grn %s: %w", grnID, err)
	}

	logger.Info("GRN updated successfully", slog.String("grn_id", grnID), slog.Bool("line_items_replaced", replace))
	return s.loadGRN(ctx, grnID)
}

func (s *grnService) ReplaceLineItems(ctx context.Context, grnID string, reqs []dto.LineItemRequest, userID string) (*domain.GRN, error) {
	now := s.Now()
	items, err := buildLineItems(grnID, reqs, userID, now)
	if err != nil {
		return nil, err
	}

	err = s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		grn, err := txRepo.FindGRNByIDForUpdate(ctx, grnID)
		if err != nil {
			return err
		}
		if err := replaceLineItems(ctx, txRepo, grnID, items); err != nil {
			return err
		}
		if err := touchHeader(ctx, txRepo, grn, userID, now); err != nil {
			return err
		}
		_, err = s.recalculateTotals(ctx, txRepo, grnID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to replace line items", slog.String("grn_id", grnID))
		}
		return nil, fmt.Errorf("failed to replace line items of grn %s: %w", grnID, err)
	}

	s.LogInfo(ctx, "GRN line items replaced", slog.String("grn_id", grnID), slog.Int("line_items", len(items)))
	return s.loadGRN(ctx, grnID)
}

func (s *grnService) DeleteGRN(ctx context.Context, grnID string) error {
	err := s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		if _, err := txRepo.FindGRNByIDForUpdate(ctx, grnID); err != nil {
			return err
		}
		if err := txRepo.DeleteLineItemsByGRNID(ctx, grnID); err != nil {
			return fmt.Errorf("failed to delete line items: %w", err)
		}
		return txRepo.DeleteGRN(ctx, grnID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete GRN", slog.String("grn_id", grnID))
		}
		return fmt.Errorf("failed to delete grn %s: %w", grnID, err)
	}
	s.LogInfo(ctx, "GRN deleted", slog.String("grn_id", grnID))
	return nil
}

// touchHeader stamps the GRN header as updated by userID.
func touchHeader(ctx context.Context, txRepo portsrepo.GRNRepositoryFacade, grn *domain.GRN, userID string, now time.Time) error {
	grn.Touch(userID, now)
	if err := txRepo.UpdateGRN(ctx, *grn); err != nil {
		return fmt.Errorf("failed to touch grn header: %w", err)
	}
	return nil
}

func (s *grnService) AddLineItem(ctx context.Context, grnID string, req dto.LineItemRequest, userID string) (*domain.GRNLineItem, error) {
	now := s.Now()
	item, err := newLineItem(grnID, req, userID, now)
	if err != nil {
		return nil, err
	}

	err = s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		grn, err := txRepo.FindGRNByIDForUpdate(ctx, grnID)
		if err != nil {
			return err
		}
		if err := txRepo.SaveLineItems(ctx, []domain.GRNLineItem{item}); err != nil {
			return fmt.Errorf("failed to save line item: %w", err)
		}
		if err := touchHeader(ctx, txRepo, grn, userID, now); err != nil {
			return err
		}
		_, err = s.recalculateTotals(ctx, txRepo, grnID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to add line item", slog.String("grn_id", grnID))
		}
		return nil, fmt.Errorf("failed to add line item to grn %s: %w", grnID, err)
	}

	s.LogInfo(ctx, "Line item added", slog.String("grn_id", grnID), slog.String("line_item_id", item.LineItemID))
	return s.grnRepo.FindLineItemByID(ctx, grnID, item.LineItemID)
}

func (s *grnService) UpdateLineItem(ctx context.Context, grnID, lineItemID string, req dto.LineItemRequest, userID string) (*domain.GRNLineItem, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	now := s.Now()

	err := s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		grn, err := txRepo.FindGRNByIDForUpdate(ctx, grnID)
		if err != nil {
			return err
		}
		item, err := txRepo.FindLineItemByID(ctx, grnID, lineItemID)
		if err != nil {
			return err
		}
		if err := applyLineItemRequest(item, req); err != nil {
			return err
		}
		item.Touch(userID, now)
		if err := txRepo.UpdateLineItem(ctx, *item); err != nil {
			return fmt.Errorf("failed to update line item: %w", err)
		}
		if err := touchHeader(ctx, txRepo, grn, userID, now); err != nil {
			return err
		}
		_, err = s.recalculateTotals(ctx, txRepo, grnID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update line item", slog.String("grn_id", grnID), slog.String("line_item_id", lineItemID))
		}
		return nil, fmt.Errorf("failed to update line item %s: %w", lineItemID, err)
	}

	return s.grnRepo.FindLineItemByID(ctx, grnID, lineItemID)
}

func (s *grnService) DeleteLineItem(ctx context.Context, grnID, lineItemID string, userID string) error {
	now := s.Now()
	err := s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		grn, err := txRepo.FindGRNByIDForUpdate(ctx, grnID)
		if err != nil {
			return err
		}
		if err := txRepo.DeleteLineItem(ctx, grnID, lineItemID); err != nil {
			return err
		}
		if err := touchHeader(ctx, txRepo, grn, userID, now); err != nil {
			return err
		}
		_, err = s.recalculateTotals(ctx, txRepo, grnID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete line item", slog.String("grn_id", grnID), slog.String("line_item_id", lineItemID))
		}
		return fmt.Errorf("failed to delete line item %s: %w", lineItemID, err)
	}
	s.LogInfo(ctx, "Line item deleted", slog.String("grn_id", grnID), slog.String("line_item_id", lineItemID))
	return nil
}

func (s *grnService) RecalculateTotals(ctx context.Context, grnID string) (domain.GRNTotals, error) {
	var totals domain.GRNTotals
	err := s.grnRepo.WithinTransaction(ctx, func(txRepo portsrepo.GRNRepositoryFacade) error {
		if _, err := txRepo.FindGRNByIDForUpdate(ctx, grnID); err != nil {
			return err
		}
		var err error
		totals, err = s.recalculateTotals(ctx, txRepo, grnID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to recalculate totals", slog.String("grn_id", grnID))
		}
		return domain.GRNTotals{}, fmt.Errorf("failed to recalculate totals of grn %s: %w", grnID, err)
	}
	return totals, nil
}

// RecalculateAllTotals keeps going past individual failures and reports them together.
func (s *grnService) RecalculateAllTotals(ctx context.Context) (int, error) {
	ids, err := s.grnRepo.ListGRNIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list grn ids: %w", err)
	}

	var errs []error
	processed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.RecalculateTotals(ctx, id); err != nil {
			errs = append(errs, err)
			continue
		}
		processed++
	}

	s.LogInfo(ctx, "GRN totals reconciled", slog.Int("processed", processed), slog.Int("failed", len(errs)))
	return processed, errors.Join(errs...)
}
