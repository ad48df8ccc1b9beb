// Package cellref holds the column-address value type shared by the mapping
// table and the sheet writer. Addresses use the conventional letter encoding:
// base-26 positional with no zero digit, so "A"=1, "Z"=26, "AA"=27, "BA"=53.
package cellref

import (
	"fmt"
	"strings"
)

// ColumnAddress is a letter-encoded spreadsheet column reference like "C" or "BM".
// The zero value is invalid; construct through Parse or FromIndex.
type ColumnAddress string

// Parse validates and normalizes a column reference string.
func Parse(s string) (ColumnAddress, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty column address")
	}
	for _, ch := range s {
		if ch < 'A' || ch > 'Z' {
			return "", fmt.Errorf("invalid column address: %q", s)
		}
	}
	return ColumnAddress(s), nil
}

// Index converts the address to its 1-based numeric column index.
func (a ColumnAddress) Index() (int, error) {
	if a == "" {
		return 0, fmt.Errorf("empty column address")
	}
	idx := 0
	for _, ch := range string(a) {
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column address: %q", string(a))
		}
		idx = idx*26 + int(ch-'A') + 1
	}
	return idx, nil
}

// FromIndex converts a 1-based numeric column index to its letter encoding.
// 1→"A", 26→"Z", 27→"AA", 53→"BA".
func FromIndex(idx int) (ColumnAddress, error) {
	if idx < 1 {
		return "", fmt.Errorf("column index must be >= 1, got %d", idx)
	}
	name := ""
	for idx > 0 {
		idx-- // no zero digit in the encoding
		name = string(rune('A'+idx%26)) + name
		idx /= 26
	}
	return ColumnAddress(name), nil
}

// String returns the letter form of the address.
func (a ColumnAddress) String() string { return string(a) }

// Cell returns the full cell name for this column on a 1-based row, e.g. "C2".
func (a ColumnAddress) Cell(row int) string {
	return fmt.Sprintf("%s%d", string(a), row)
}
