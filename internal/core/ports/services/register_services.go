package services

import (
	"context"
	"io"

	"github.com/SscSPs/grn_tracker/internal/core/domain"
)

// RegisterSvc produces the GRN register report.
type RegisterSvc interface {
	// GenerateRegister returns the register rows matching filter, latest GRN date first.
	GenerateRegister(ctx context.Context, filter domain.RegisterFilter) ([]domain.RegisterRow, error)

	// ExportRegister renders the register as a spreadsheet and returns it with a download file name.
	ExportRegister(ctx context.Context, filter domain.RegisterFilter) ([]byte, string, error)
}

// RegisterExporter renders register rows into a document.
type RegisterExporter interface {
	WriteRegister(w io.Writer, rows []domain.RegisterRow) error
}

// CategoryWorkbook reads and writes asset categories as spreadsheets.
type CategoryWorkbook interface {
	WriteCategories(w io.Writer, categories []domain.AssetCategory) error

	// ReadCategories parses the first sheet. Returned categories carry only
	// name, description and status.
	ReadCategories(r io.Reader) ([]domain.AssetCategory, error)
}
