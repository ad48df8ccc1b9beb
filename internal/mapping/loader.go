package mapping

import (
	"fmt"
	"strings"

	"github.com/skagen-tools/marketfill/internal/cellref"
	"github.com/skagen-tools/marketfill/internal/sheet"
)

const (
	mappingSheet = "Column_Mappings"

	colAttribute  = "attribute_name"
	colValueType  = "input_type" // historical header, means value scope
	colDataSource = "data_source"
	colTransform  = "transform"

	platformColumnSuffix = "_column"
)

// Load reads the mapping table from the configured workbook. An unreadable or
// malformed source returns an empty table together with an error wrapping
// sheet.ErrConfigLoad; callers log the error and continue with nothing mapped.
func Load(path string) (*Table, error) {
	t, err := sheet.ReadTable(path, mappingSheet)
	if err != nil {
		return &Table{}, fmt.Errorf("load mapping table: %w", err)
	}
	return FromTable(t)
}

// FromTable builds the mapping table from an already read worksheet.
func FromTable(t *sheet.Table) (*Table, error) {
	var platformCols []string
	for _, h := range t.Headers {
		if strings.HasSuffix(h, platformColumnSuffix) {
			platformCols = append(platformCols, h)
		}
	}

	out := &Table{}
	for _, row := range t.Rows {
		attr := strings.ToLower(strings.TrimSpace(row[colAttribute]))
		if attr == "" {
			continue
		}
		m := AttributeMapping{
			Attribute:    attr,
			Scope:        ParseScope(row[colValueType]),
			Source:       ParseSource(row[colDataSource]),
			Transform:    strings.TrimSpace(row[colTransform]),
			Destinations: make(map[string]cellref.ColumnAddress),
		}
		for _, col := range platformCols {
			letter := row[col]
			if letter == "" {
				continue
			}
			addr, err := cellref.Parse(letter)
			if err != nil {
				// A bad address disables this destination only.
				continue
			}
			platform := strings.TrimSuffix(col, platformColumnSuffix)
			m.Destinations[platform] = addr
		}
		out.add(m)
	}
	return out, nil
}
