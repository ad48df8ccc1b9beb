package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFieldRules_MissingFileYieldsDefaults(t *testing.T) {
	rules, err := LoadFieldRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFieldRules(), rules)
}

func TestLoadFieldRules_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	content := "aliases:\n  - canonical: color\n    alias: colour\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadFieldRules(path)
	require.NoError(t, err)
	assert.Equal(t, []AliasPair{{Canonical: "color", Alias: "colour"}}, rules.Aliases)
	// Unspecified sections fall back to the defaults.
	assert.Equal(t, "en", rules.SourceSuffix)
	assert.Equal(t, "ean", rules.IdentifierAttribute)
	assert.Contains(t, rules.Languages, "pl")
}

func TestLoadFieldRules_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases: [unclosed"), 0o644))

	_, err := LoadFieldRules(path)
	require.Error(t, err)
}

func TestAliasesFor_BothDirections(t *testing.T) {
	rules := DefaultFieldRules()
	assert.Equal(t, []string{"desciption"}, rules.AliasesFor("description"))
	assert.Equal(t, []string{"description"}, rules.AliasesFor("desciption"))
	assert.Equal(t, []string{"desciption"}, rules.AliasesFor("Description"), "lookup is case-insensitive")
	assert.Empty(t, rules.AliasesFor("weight"))
}
