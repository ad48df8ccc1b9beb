// Package transform turns products into platform upload sheets: the resolver
// decides which value lands in which column, the materializer writes resolved
// rows into a reference template, and the pipeline runs both per platform.
package transform

import (
	"fmt"

	"github.com/skagen-tools/marketfill/internal/catalog"
	"github.com/skagen-tools/marketfill/internal/cellref"
	"github.com/skagen-tools/marketfill/internal/config"
	"github.com/skagen-tools/marketfill/internal/logging"
	"github.com/skagen-tools/marketfill/internal/mapping"
)

// ResolvedRow maps destination column addresses to the values one product
// contributes on one platform.
type ResolvedRow map[cellref.ColumnAddress]any

// Resolver resolves each mapped attribute's effective value for a
// (product, platform) pair. Absence of an attribute, value or destination is
// normal and silently skipped; Resolve never fails.
type Resolver struct {
	table  *mapping.Table
	values *mapping.ValueStore
	rules  *config.FieldRules
	logger logging.Logger
	eval   evaluator
}

// NewResolver builds a Resolver. A nil value store behaves as empty.
func NewResolver(table *mapping.Table, values *mapping.ValueStore, rules *config.FieldRules, logger logging.Logger) *Resolver {
	if values == nil {
		values = mapping.NewValueStore()
	}
	if rules == nil {
		rules = config.DefaultFieldRules()
	}
	return &Resolver{table: table, values: values, rules: rules, logger: logger}
}

// Resolve walks the mapping table in row order and produces the destination
// address → value set for one product on one platform. When two rows target
// the same address the later row wins; that tie-break is table order.
func (r *Resolver) Resolve(p catalog.Product, platform string) ResolvedRow {
	row := make(ResolvedRow)
	for i := range r.table.Mappings {
		m := &r.table.Mappings[i]
		dest, ok := m.DestinationFor(platform)
		if !ok {
			continue
		}
		value, ok := r.resolveValue(p, m, platform)
		if !ok {
			continue
		}
		if m.Transform != "" {
			value = r.applyTransform(m, p, platform, value)
		}
		row[dest] = value
	}
	r.applySKURule(p, platform, row)
	return row
}

func (r *Resolver) resolveValue(p catalog.Product, m *mapping.AttributeMapping, platform string) (any, bool) {
	switch m.Source {
	case mapping.SourceStaticTable:
		v, ok := r.values.Resolve(m.Attribute, m.Scope, platform)
		return v, ok
	default: // SourceInputFile
		if v := p.Get(m.Attribute); v != "" {
			return v, true
		}
		// Historical spreadsheets used alternate spellings for some
		// fields; those supply the value when the canonical name is
		// empty, and vice versa.
		for _, alias := range r.rules.AliasesFor(m.Attribute) {
			if v := p.Get(alias); v != "" {
				return v, true
			}
		}
		return "", false
	}
}

func (r *Resolver) applyTransform(m *mapping.AttributeMapping, p catalog.Product, platform string, value any) any {
	env := map[string]any{
		"value":    value,
		"product":  p,
		"platform": platform,
	}
	out, err := r.eval.apply(m.Transform, env)
	if err != nil {
		r.logger.LogWarning(fmt.Sprintf("transform for %s failed, keeping raw value: %v", m.Attribute, err))
		return value
	}
	return out
}

// applySKURule overwrites the shop-SKU destination with the product's
// identifier field. Marketplaces key listings on the merchant SKU, and the
// catalogs this tool serves use the EAN for that.
func (r *Resolver) applySKURule(p catalog.Product, platform string, row ResolvedRow) {
	id := p.Get(r.rules.IdentifierAttribute)
	if id == "" {
		return
	}
	m := r.table.Find(r.rules.SKUAttribute)
	if m == nil {
		return
	}
	if dest, ok := m.DestinationFor(platform); ok {
		row[dest] = id
	}
}
