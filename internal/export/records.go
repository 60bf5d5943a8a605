// Package export writes test records to an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/vytor/kanaflash/internal/models"
	"github.com/xuri/excelize/v2"
)

// RecordsSheet is the name of the sheet holding the records.
const RecordsSheet = "Records"

// ContentType is the MIME type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var recordHeader = []string{"Date", "Accuracy (%)", "Duration (s)", "Correct", "Total", "Kana type", "Category", "ID"}

// WriteRecords writes one row per record, in the given order, below a header
// row.
func WriteRecords(w io.Writer, records []models.TestRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %v", err)
	}

	for col, title := range recordHeader {
		if err := setCell(f, col+1, 1, title); err != nil {
			return err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(RecordsSheet, "A1", "H1", style)
	}
	_ = f.SetColWidth(RecordsSheet, "A", "A", 20)
	_ = f.SetColWidth(RecordsSheet, "H", "H", 38)

	for i, r := range records {
		row := i + 2
		values := []any{
			r.Date.Format("2006-01-02 15:04"),
			r.Accuracy,
			r.Duration,
			r.Correct,
			r.Total,
			r.KanaType,
			r.KanaCategory,
			r.ID,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %v", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(RecordsSheet, cell, v); err != nil {
		return fmt.Errorf("failed to set %s: %v", cell, err)
	}
	return nil
}
