package mapping

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/skagen-tools/marketfill/internal/sheet"
)

func writeValuesFile(t *testing.T, same, platform [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attributes.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	writeSheet(t, f, "Same_Input_Attributes", same)
	writeSheet(t, f, "Platform_Specific_Attributes", platform)
	require.NoError(t, f.DeleteSheet("Sheet1"))
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadValues(t *testing.T) {
	path := writeValuesFile(t,
		[][]any{
			{"attribute_name", "value"},
			{"warranty", "2 years"},
			{"empty_one", nil},
		},
		[][]any{
			{"attribute_name", "castorama_fr_value", "leroy_merlin_value"},
			{"brand", "Nordic Acoustics", "NORDIC ACOUSTICS"},
			{"category", nil, "FLOOR01"},
		},
	)

	store, err := LoadValues(path)
	require.NoError(t, err)

	// SAME values are identical for every platform.
	for _, platform := range []string{"castorama_fr", "leroy_merlin", "whatever"} {
		v, ok := store.Resolve("warranty", ScopeSame, platform)
		require.True(t, ok)
		assert.Equal(t, "2 years", v)
	}

	// Empty values are dropped, not stored as "".
	_, ok := store.Resolve("empty_one", ScopeSame, "castorama_fr")
	assert.False(t, ok)

	v, ok := store.Resolve("brand", ScopePlatformSpecific, "leroy_merlin")
	require.True(t, ok)
	assert.Equal(t, "NORDIC ACOUSTICS", v)

	// A platform without a stored value gets nothing, never another
	// platform's value.
	_, ok = store.Resolve("category", ScopePlatformSpecific, "castorama_fr")
	assert.False(t, ok)
}

func TestLoadValues_MissingFile(t *testing.T) {
	store, err := LoadValues(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, sheet.ErrConfigLoad))
	_, ok := store.Resolve("anything", ScopeSame, "p")
	assert.False(t, ok, "failed load must behave as an empty store")
}

func TestValueStore_SetPlatformValue(t *testing.T) {
	store := NewValueStore()
	store.SetPlatformValue("Brand", "maxeda_nl", "Nordic Acoustics")
	store.SetPlatformValue("brand", "maxeda_be", "")

	v, ok := store.Resolve("brand", ScopePlatformSpecific, "maxeda_nl")
	require.True(t, ok)
	assert.Equal(t, "Nordic Acoustics", v)
	_, ok = store.Resolve("brand", ScopePlatformSpecific, "maxeda_be")
	assert.False(t, ok)
}
