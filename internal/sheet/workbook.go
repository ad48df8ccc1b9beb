// Package sheet is the excelize boundary: every workbook read and write in the
// converter goes through here, so the rest of the code deals in headers, rows
// and column addresses instead of cell names.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrTemplateNotFound reports a missing reference template. The pipeline
// treats it as fatal for one platform only.
var ErrTemplateNotFound = errors.New("reference template not found")

// ErrConfigLoad reports an unreadable or malformed configuration workbook.
// Loaders recover to an empty table and surface this as a warning.
var ErrConfigLoad = errors.New("config table load failed")

// Table is a row-oriented view of one worksheet: the header row plus one
// name→value map per data row. Values are strings exactly as excelize reads
// them; empty cells are absent from the maps.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// OpenWorkbook opens an existing workbook. A missing file maps to
// ErrTemplateNotFound so callers can distinguish it from a corrupt one.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return f, nil
}

// FirstSheet returns the name of the workbook's first sheet.
func FirstSheet(f *excelize.File) string {
	list := f.GetSheetList()
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// ReadTable reads a worksheet into a Table. An empty sheetName selects the
// first sheet. Failures wrap ErrConfigLoad.
func ReadTable(path, sheetName string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrConfigLoad, path, err)
	}
	defer f.Close()
	return ReadTableFrom(f, sheetName)
}

// ReadTableFrom reads a worksheet of an already open workbook into a Table.
func ReadTableFrom(f *excelize.File, sheetName string) (*Table, error) {
	if sheetName == "" {
		sheetName = FirstSheet(f)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrConfigLoad, sheetName, err)
	}
	t := &Table{}
	if len(rows) == 0 {
		return t, nil
	}
	for _, h := range rows[0] {
		t.Headers = append(t.Headers, strings.TrimSpace(h))
	}
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if h == "" || i >= len(raw) {
				continue
			}
			val := strings.TrimSpace(raw[i])
			if val != "" {
				row[h] = val
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// DataRowCount returns the number of rows carrying any value below the given
// header region.
func DataRowCount(f *excelize.File, sheetName string, headerRows int) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	// The last non-empty row defines how far the data region extends;
	// all-empty rows in between still count.
	last := 0
	for i := headerRows; i < len(rows); i++ {
		for _, v := range rows[i] {
			if strings.TrimSpace(v) != "" {
				last = i - headerRows + 1
				break
			}
		}
	}
	return last, nil
}

// ClearDataRows removes every row below the header region, shifting nothing
// into it. Formatting of the header region and other sheets is untouched.
func ClearDataRows(f *excelize.File, sheetName string, headerRows int) error {
	n, err := DataRowCount(f, sheetName, headerRows)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		// Rows shift up after each removal, so always remove the first
		// data row.
		if err := f.RemoveRow(sheetName, headerRows+1); err != nil {
			return fmt.Errorf("remove row %d from %q: %w", headerRows+1, sheetName, err)
		}
	}
	return nil
}
