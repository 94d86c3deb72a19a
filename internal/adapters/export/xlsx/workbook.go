// Package xlsx renders and parses the spreadsheets exchanged by the API.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/utils"
)

const (
	RegisterSheet = "GRN Register"
	CategorySheet = "Asset Categories"

	// ContentType is the MIME type of the workbooks produced here.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	categoryDateLayout = "2006-01-02"
)

var registerHeaders = []any{
	"GRN Number", "GRN Date", "Invoice Number", "Vendor Name", "Branch Name",
	"Branch Location", "Total Amount", "Total Tax", "Grand Total", "Status",
}

var categoryHeaders = []any{"Category Name", "Description", "Status", "Created At", "Updated At"}

// Workbook writes the GRN register and reads and writes asset category sheets.
type Workbook struct{}

// NewWorkbook returns the excelize-backed workbook adapter.
func NewWorkbook() *Workbook {
	return &Workbook{}
}

var (
	_ portssvc.RegisterExporter = (*Workbook)(nil)
	_ portssvc.CategoryWorkbook = (*Workbook)(nil)
)

// newSheetFile creates a workbook whose only sheet is named sheet, with a bold header row.
func newSheetFile(sheet string, headers []any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header row: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		f.Close()
		return nil, fmt.Errorf("style header row: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNo, err)
	}
	return nil
}

// WriteRegister writes rows to w as a single-sheet workbook. Amounts are rounded for display.
func (wb *Workbook) WriteRegister(w io.Writer, rows []domain.RegisterRow) error {
	f, err := newSheetFile(RegisterSheet, registerHeaders)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, r := range rows {
		values := []any{
			r.GRNNumber,
			r.GRNDate.Format(domain.RegisterDateLayout),
			r.InvoiceNumber,
			r.VendorName,
			r.BranchName,
			r.BranchLocation,
			utils.RoundForDisplay(r.TotalAmount).InexactFloat64(),
			utils.RoundForDisplay(r.TotalTax).InexactFloat64(),
			utils.RoundForDisplay(r.GrandTotal).InexactFloat64(),
			string(r.Status),
		}
		if err := writeRow(f, RegisterSheet, i+2, values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// WriteCategories writes categories to w as a single-sheet workbook.
func (wb *Workbook) WriteCategories(w io.Writer, categories []domain.AssetCategory) error {
	f, err := newSheetFile(CategorySheet, categoryHeaders)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, c := range categories {
		values := []any{
			c.Name,
			c.Description,
			string(c.Status),
			c.CreatedAt.Format(categoryDateLayout),
			c.LastUpdatedAt.Format(categoryDateLayout),
		}
		if err := writeRow(f, CategorySheet, i+2, values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// ReadCategories parses the first sheet of r. The first row is the header; the name
// is taken from "Category Name" or else "Name". Blank rows are skipped.
func (wb *Workbook) ReadCategories(r io.Reader) ([]domain.AssetCategory, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Validationf("unreadable workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.Validationf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Validationf("unreadable sheet %q: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	nameCol, ok := columns["category name"]
	if !ok {
		if nameCol, ok = columns["name"]; !ok {
			return nil, apperrors.Validationf(`sheet %q has no "Category Name" or "Name" column`, sheets[0])
		}
	}
	descCol, hasDesc := columns["description"]
	statusCol, hasStatus := columns["status"]

	cell := func(row []string, col int, present bool) string {
		if !present || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	var categories []domain.AssetCategory
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		categories = append(categories, domain.AssetCategory{
			Name:        cell(row, nameCol, true),
			Description: cell(row, descCol, hasDesc),
			Status:      domain.MasterStatus(strings.ToLower(cell(row, statusCol, hasStatus))),
		})
	}
	return categories, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
