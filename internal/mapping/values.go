package mapping

import (
	"fmt"
	"strings"

	"github.com/skagen-tools/marketfill/internal/sheet"
)

const (
	sameSheet     = "Same_Input_Attributes"
	platformSheet = "Platform_Specific_Attributes"

	colValue            = "value"
	platformValueSuffix = "_value"
)

// ValueStore holds the pre-determined attribute values: one shared value per
// SAME attribute, one value per platform for PLATFORM_SPECIFIC attributes.
// Empty values are never stored.
type ValueStore struct {
	Same             map[string]string
	PlatformSpecific map[string]map[string]string
}

// NewValueStore returns an empty store.
func NewValueStore() *ValueStore {
	return &ValueStore{
		Same:             make(map[string]string),
		PlatformSpecific: make(map[string]map[string]string),
	}
}

// LoadValues reads both value sheets from the attributes workbook. Failure
// returns an empty store plus an error wrapping sheet.ErrConfigLoad, so
// resolution downstream just finds no values.
func LoadValues(path string) (*ValueStore, error) {
	store := NewValueStore()

	sameTable, err := sheet.ReadTable(path, sameSheet)
	if err != nil {
		return store, fmt.Errorf("load attribute values: %w", err)
	}
	for _, row := range sameTable.Rows {
		attr := strings.ToLower(strings.TrimSpace(row[colAttribute]))
		val := row[colValue]
		if attr == "" || val == "" {
			continue
		}
		store.Same[attr] = val
	}

	platTable, err := sheet.ReadTable(path, platformSheet)
	if err != nil {
		return store, fmt.Errorf("load attribute values: %w", err)
	}
	for _, row := range platTable.Rows {
		attr := strings.ToLower(strings.TrimSpace(row[colAttribute]))
		if attr == "" {
			continue
		}
		for col, val := range row {
			if !strings.HasSuffix(col, platformValueSuffix) || val == "" {
				continue
			}
			platform := strings.TrimSuffix(col, platformValueSuffix)
			store.SetPlatformValue(attr, platform, val)
		}
	}
	return store, nil
}

// SetPlatformValue stores a platform-specific value, dropping empties.
func (s *ValueStore) SetPlatformValue(attribute, platform, value string) {
	if value == "" {
		return
	}
	attribute = strings.ToLower(attribute)
	if s.PlatformSpecific[attribute] == nil {
		s.PlatformSpecific[attribute] = make(map[string]string)
	}
	s.PlatformSpecific[attribute][platform] = value
}

// Resolve looks up the stored value for an attribute under the given scope.
// PLATFORM_SPECIFIC lookups never fall back to another platform's value.
func (s *ValueStore) Resolve(attribute string, scope ValueScope, platform string) (string, bool) {
	attribute = strings.ToLower(attribute)
	switch scope {
	case ScopeSame:
		v, ok := s.Same[attribute]
		return v, ok
	case ScopePlatformSpecific:
		values, ok := s.PlatformSpecific[attribute]
		if !ok {
			return "", false
		}
		v, ok := values[platform]
		return v, ok
	}
	return "", false
}
