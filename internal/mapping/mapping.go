// Package mapping loads the declarative attribute configuration: which
// logical attribute lands in which column of each platform's upload sheet,
// and where its value comes from.
package mapping

import (
	"strings"

	"github.com/skagen-tools/marketfill/internal/cellref"
)

// ValueScope says whether an attribute carries one value for every platform
// or a value per platform.
type ValueScope int

const (
	ScopeSame ValueScope = iota
	ScopePlatformSpecific
)

// ValueSource says where an attribute's value is read from: the per-run
// product catalog, or the static attribute workbook. "punch_card" is the
// historical spreadsheet term for the static table and is kept on the wire.
type ValueSource int

const (
	SourceInputFile ValueSource = iota
	SourceStaticTable
)

// ParseScope maps the spreadsheet value_type strings onto a ValueScope.
func ParseScope(s string) ValueScope {
	if strings.EqualFold(strings.TrimSpace(s), "platform_specific") {
		return ScopePlatformSpecific
	}
	return ScopeSame
}

// ParseSource maps the spreadsheet data_source strings onto a ValueSource.
func ParseSource(s string) ValueSource {
	if strings.EqualFold(strings.TrimSpace(s), "punch_card") {
		return SourceStaticTable
	}
	return SourceInputFile
}

// AttributeMapping is one row of the mapping table.
type AttributeMapping struct {
	Attribute    string
	Scope        ValueScope
	Source       ValueSource
	Transform    string // optional expression applied to the resolved value
	Destinations map[string]cellref.ColumnAddress
}

// DestinationFor returns the output column for a platform. A missing
// destination means the attribute is simply not uploaded there.
func (m *AttributeMapping) DestinationFor(platform string) (cellref.ColumnAddress, bool) {
	addr, ok := m.Destinations[platform]
	return addr, ok
}

// Table is the ordered mapping table. Order matters: when two attributes
// target the same destination column, the later row wins, and that tie-break
// follows the workbook's row order.
type Table struct {
	Mappings []AttributeMapping
	byName   map[string]int
}

// Find returns the mapping for an attribute name, or nil.
func (t *Table) Find(attribute string) *AttributeMapping {
	i, ok := t.byName[strings.ToLower(attribute)]
	if !ok {
		return nil
	}
	return &t.Mappings[i]
}

// Len returns the number of mapped attributes.
func (t *Table) Len() int { return len(t.Mappings) }

func (t *Table) add(m AttributeMapping) {
	t.Mappings = append(t.Mappings, m)
	if t.byName == nil {
		t.byName = make(map[string]int)
	}
	name := strings.ToLower(m.Attribute)
	if _, exists := t.byName[name]; !exists {
		t.byName[name] = len(t.Mappings) - 1
	}
}
