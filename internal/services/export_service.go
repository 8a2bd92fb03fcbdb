package services

import (
	"context"
	"fmt"
	"time"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExportService turns any entity listing into an XLSX workbook.
type ExportService struct {
	Catalog   CatalogService
	RequestID string
	Now       func() time.Time
}

func (s ExportService) Export(ctx context.Context, rc domain.RequestContext, kind domain.Kind) ([]byte, string, error) {
	if !rc.IsAdmin() {
		return nil, "", errAdminOnly
	}
	t, err := s.Catalog.ListEntities(ctx, kind)
	if err != nil {
		return nil, "", err
	}
	data, err := WorkbookOf(t)
	if err != nil {
		return nil, "", domain.StoreError{Op: "build workbook", Err: err}
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	utils.LogEvent(s.RequestID, "export", "xlsx", fmt.Sprintf("kind=%s rows=%d", kind, len(t.Rows)))
	return data, fmt.Sprintf("%s_export_%s.xlsx", kind, now.Format("2006-01-02_15-04-05")), nil
}

// WorkbookOf writes the table to a single sheet named after its kind,
// with a bold header row.
func WorkbookOf(t models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Kind
	if sheet == "" {
		sheet = "data"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	for i, col := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
		f.SetCellStyle(sheet, cell, cell, header)
	}
	for r, row := range t.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if tv, ok := v.(time.Time); ok {
				v = utils.FormatDateTime(tv)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
				return nil, err
			}
		}
	}
	if n := len(t.Columns); n > 0 {
		last, _ := excelize.ColumnNumberToName(n)
		f.SetColWidth(sheet, "A", last, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellValue unwraps named string types so they land as text cells.
func cellValue(v any) any {
	switch x := v.(type) {
	case domain.BookingStatus:
		return string(x)
	case domain.SupportStatus:
		return string(x)
	case domain.Role:
		return int(x)
	}
	return v
}
