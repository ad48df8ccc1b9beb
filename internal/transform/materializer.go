package transform

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/skagen-tools/marketfill/internal/logging"
	"github.com/skagen-tools/marketfill/internal/sheet"
)

// ErrCellWrite reports a single cell that could not be addressed or written.
// It never aborts a row or a run; the cell is skipped with a warning.
var ErrCellWrite = errors.New("cell write failed")

// Materializer writes resolved rows into a platform's reference template.
// The header region is never touched; the old data region is removed wholesale
// and products are written in input order directly below the headers. Only
// cell values are set, so styles, column widths, merged cells and other sheets
// survive exactly as the template ships them.
type Materializer struct {
	HeaderRows int
	Logger     logging.Logger
}

// Materialize clears the data region of the workbook's first sheet and writes
// one row per resolved product. It returns the number of product rows written.
func (m *Materializer) Materialize(f *excelize.File, rows []ResolvedRow) (int, error) {
	sheetName := sheet.FirstSheet(f)
	if sheetName == "" {
		return 0, fmt.Errorf("template workbook has no sheets")
	}
	headerRows := m.HeaderRows
	if headerRows < 1 {
		headerRows = 1
	}
	if err := sheet.ClearDataRows(f, sheetName, headerRows); err != nil {
		return 0, fmt.Errorf("clear data rows: %w", err)
	}

	for i, row := range rows {
		targetRow := headerRows + 1 + i
		for addr, value := range row {
			colIdx, err := addr.Index()
			if err != nil {
				m.warnCell(addr.String(), targetRow, err)
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx, targetRow)
			if err != nil {
				m.warnCell(addr.String(), targetRow, err)
				continue
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				m.warnCell(addr.String(), targetRow, err)
				continue
			}
		}
	}
	return len(rows), nil
}

func (m *Materializer) warnCell(addr string, row int, err error) {
	if m.Logger == nil {
		return
	}
	m.Logger.LogWarning(fmt.Sprintf("%v: column %s row %d: %v", ErrCellWrite, addr, row, err))
}
