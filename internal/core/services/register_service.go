package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/grn_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
)

type registerService struct {
	BaseService
	repo     portsrepo.RegisterReader
	exporter portssvc.RegisterExporter
}

// NewRegisterService creates the GRN register service.
func NewRegisterService(repo portsrepo.RegisterReader, exporter portssvc.RegisterExporter, options ...ServiceOption) portssvc.RegisterSvc {
	return &registerService{
		BaseService: newBaseService(options),
		repo:        repo,
		exporter:    exporter,
	}
}

var _ portssvc.RegisterSvc = (*registerService)(nil)

func (s *registerService) GenerateRegister(ctx context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, apperrors.Validationf("endDate must not be before startDate")
	}
	rows, err := s.repo.ListRegisterRows(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load GRN register")
		return nil, fmt.Errorf("failed to load grn register: %w", err)
	}
	return rows, nil
}

func (s *registerService) ExportRegister(ctx context.Context, filter domain.RegisterFilter) ([]byte, string, error) {
	rows, err := s.GenerateRegister(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := s.exporter.WriteRegister(&buf, rows); err != nil {
		s.LogError(ctx, err, "Failed to render GRN register workbook")
		return nil, "", fmt.Errorf("failed to render grn register: %w", err)
	}
	fileName := fmt.Sprintf("grn_register_%d.xlsx", s.Now().Unix())
	s.LogInfo(ctx, "GRN register exported", slog.Int("rows", len(rows)), slog.String("file_name", fileName))
	return buf.Bytes(), fileName, nil
}
