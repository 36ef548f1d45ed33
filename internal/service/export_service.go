package service

import (
	"fmt"
	"time"

	"document-scanner/internal/domain"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Extraction"

// XLSXExporter builds spreadsheet downloads of extracted fields in memory.
type XLSXExporter struct {
	logger domain.Logger
}

func NewXLSXExporter(logger domain.Logger) *XLSXExporter {
	return &XLSXExporter{logger: logger}
}

// ExportXLSX returns a workbook with one Field/Value row per extracted field.
// Recognized fields come first in their fixed order, the rest sorted by key.
func (e *XLSXExporter) ExportXLSX(result *domain.ExtractionResult) ([]byte, error) {
	if result == nil || result.Outcome != domain.OutcomeSuccess || len(result.Fields) == 0 {
		return nil, domain.ErrNoExportableResult
	}
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	write := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(exportSheet, cell, v)
	}

	if err := write(1, 1, "Field"); err != nil {
		return nil, err
	}
	if err := write(2, 1, "Value"); err != nil {
		return nil, err
	}

	row := 2
	for _, key := range domain.OrderedFieldKeys(result.Fields) {
		if err := write(1, row, key); err != nil {
			return nil, err
		}
		if err := write(2, row, result.Fields[key]); err != nil {
			return nil, err
		}
		row++
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 24)
	_ = f.SetColWidth(exportSheet, "B", "B", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	e.logger.Info("Extraction exported",
		"rows", len(result.Fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
