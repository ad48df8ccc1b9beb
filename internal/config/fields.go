package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasPair declares that two attribute names refer to the same field. The
// alias side usually exists for compatibility with historical spreadsheets
// (misspelled headers that customers still ship).
type AliasPair struct {
	Canonical string `yaml:"canonical"`
	Alias     string `yaml:"alias"`
}

// FieldRules is the declarative field configuration: which column prefixes are
// translatable, which language suffixes are recognized, and the special
// attribute names consulted by the resolver's compatibility rules.
type FieldRules struct {
	TranslatablePrefixes []string          `yaml:"translatable_prefixes"`
	Languages            map[string]string `yaml:"languages"` // column suffix → provider language code
	SourceSuffix         string            `yaml:"source_suffix"`
	Aliases              []AliasPair       `yaml:"aliases"`
	IdentifierAttribute  string            `yaml:"identifier_attribute"`
	SKUAttribute         string            `yaml:"sku_attribute"`
}

// DefaultFieldRules returns the rules matching the historical spreadsheets.
func DefaultFieldRules() *FieldRules {
	return &FieldRules{
		TranslatablePrefixes: []string{
			"title", "description", "desciption", "short_description", "long_description",
		},
		Languages: map[string]string{
			"en": "EN",
			"fr": "FR",
			"it": "IT",
			"es": "ES",
			"de": "DE",
			"nl": "NL",
			"pl": "PL",
			"pt": "PT",
		},
		SourceSuffix: "en",
		Aliases: []AliasPair{
			{Canonical: "description", Alias: "desciption"},
		},
		IdentifierAttribute: "ean",
		SKUAttribute:        "shop_sku",
	}
}

// LoadFieldRules reads rules from a YAML file. A missing file yields the
// defaults; a malformed file is an error so a typo never silently disables
// aliasing or translation.
func LoadFieldRules(path string) (*FieldRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFieldRules(), nil
		}
		return nil, fmt.Errorf("read field rules %s: %w", path, err)
	}
	rules := DefaultFieldRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("parse field rules %s: %w", path, err)
	}
	applyFieldRuleDefaults(rules)
	return rules, nil
}

func applyFieldRuleDefaults(r *FieldRules) {
	def := DefaultFieldRules()
	if len(r.TranslatablePrefixes) == 0 {
		r.TranslatablePrefixes = def.TranslatablePrefixes
	}
	if len(r.Languages) == 0 {
		r.Languages = def.Languages
	}
	if r.SourceSuffix == "" {
		r.SourceSuffix = def.SourceSuffix
	}
	if r.IdentifierAttribute == "" {
		r.IdentifierAttribute = def.IdentifierAttribute
	}
	if r.SKUAttribute == "" {
		r.SKUAttribute = def.SKUAttribute
	}
}

// AliasesFor returns every known alternate name for an attribute, in either
// direction of the declared pairs.
func (r *FieldRules) AliasesFor(attribute string) []string {
	attribute = strings.ToLower(attribute)
	var out []string
	for _, p := range r.Aliases {
		switch attribute {
		case strings.ToLower(p.Canonical):
			out = append(out, p.Alias)
		case strings.ToLower(p.Alias):
			out = append(out, p.Canonical)
		}
	}
	return out
}
