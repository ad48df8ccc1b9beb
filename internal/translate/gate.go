package translate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/skagen-tools/marketfill/internal/catalog"
	"github.com/skagen-tools/marketfill/internal/config"
	"github.com/skagen-tools/marketfill/internal/logging"
)

// FieldGroup is one translatable field with its per-language columns. Columns
// are lower-cased attribute names as the catalog keys them.
type FieldGroup struct {
	Base    string
	Source  string   // the English column, e.g. "title_en"
	Targets []string // every other language column of the group
}

// Stats aggregates one gate run.
type Stats struct {
	Made          int // cells filled (provider or cache)
	Skipped       int // cells left alone because already filled
	Failed        int // provider/budget failures, cells left empty
	GroupsSkipped []string
}

// Gate fills empty language-variant cells from the group's English column.
// A pre-filled cell is never touched; a failed translation leaves its cell
// empty and the run continues.
type Gate struct {
	Provider    Provider
	Budget      Budget
	Cache       Cache // optional
	Rules       *config.FieldRules
	MinInterval time.Duration
	Logger      logging.Logger

	sleep func(time.Duration)
}

// NewGate wires a Gate with defaults for optional pieces.
func NewGate(provider Provider, budget Budget, rules *config.FieldRules, logger logging.Logger) *Gate {
	if budget == nil {
		budget = UnlimitedBudget{}
	}
	if rules == nil {
		rules = config.DefaultFieldRules()
	}
	return &Gate{
		Provider: provider,
		Budget:   budget,
		Rules:    rules,
		Logger:   logger,
		sleep:    time.Sleep,
	}
}

// DiscoverGroups scans the catalog headers for recognized translatable
// prefixes followed by a recognized language suffix, case-insensitively, and
// groups the columns by base name. Groups come back sorted by base name so a
// run processes them in a stable order.
func (g *Gate) DiscoverGroups(cat *catalog.Catalog) []FieldGroup {
	byBase := make(map[string][]string)
	for _, header := range cat.Headers {
		name := strings.ToLower(strings.TrimSpace(header))
		for _, prefix := range g.Rules.TranslatablePrefixes {
			p := strings.ToLower(prefix) + "_"
			if !strings.HasPrefix(name, p) {
				continue
			}
			suffix := strings.TrimPrefix(name, p)
			if _, ok := g.Rules.Languages[suffix]; ok {
				base := strings.ToLower(prefix)
				byBase[base] = append(byBase[base], name)
			}
		}
	}

	bases := make([]string, 0, len(byBase))
	for base := range byBase {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	sourceSuffix := "_" + strings.ToLower(g.Rules.SourceSuffix)
	var groups []FieldGroup
	for _, base := range bases {
		cols := byBase[base]
		sort.Strings(cols)
		grp := FieldGroup{Base: base}
		for _, col := range cols {
			if strings.HasSuffix(col, sourceSuffix) {
				grp.Source = col
			} else {
				grp.Targets = append(grp.Targets, col)
			}
		}
		groups = append(groups, grp)
	}
	return groups
}

// Run processes every group over every product. The catalog is mutated in
// place; persisting it back is the caller's job so the gate stays storage
// agnostic.
func (g *Gate) Run(ctx context.Context, cat *catalog.Catalog) Stats {
	var stats Stats
	for _, grp := range g.DiscoverGroups(cat) {
		if grp.Source == "" {
			g.Logger.LogWarning(fmt.Sprintf("no %s source column for %q, group skipped", g.Rules.SourceSuffix, grp.Base))
			stats.GroupsSkipped = append(stats.GroupsSkipped, grp.Base)
			continue
		}
		for i, product := range cat.Products {
			g.translateRow(ctx, grp, product, i, &stats)
		}
	}
	g.Logger.Log(fmt.Sprintf("translation complete: %d made, %d skipped, %d failed", stats.Made, stats.Skipped, stats.Failed))
	return stats
}

func (g *Gate) translateRow(ctx context.Context, grp FieldGroup, product catalog.Product, rowIdx int, stats *Stats) {
	source := strings.TrimSpace(product.Get(grp.Source))
	if source == "" {
		return // nothing to translate from, leave the whole row alone
	}
	for _, target := range grp.Targets {
		if product.Has(target) {
			stats.Skipped++
			continue
		}
		suffix := target[strings.LastIndex(target, "_")+1:]
		langCode, ok := g.Rules.Languages[suffix]
		if !ok {
			continue
		}
		translated, err := g.translateOne(ctx, source, langCode)
		if err != nil {
			g.Logger.LogWarning(fmt.Sprintf("row %d %s: %v", rowIdx+1, target, err))
			stats.Failed++
			continue
		}
		product.Set(target, translated)
		stats.Made++
	}
}

func (g *Gate) translateOne(ctx context.Context, text, targetLang string) (string, error) {
	sourceLang := g.Rules.Languages[strings.ToLower(g.Rules.SourceSuffix)]

	if g.Cache != nil {
		if hit, ok := g.Cache.Get(ctx, text, sourceLang, targetLang); ok {
			return hit, nil
		}
	}
	if !g.Budget.CanTranslate(len(text)) {
		return "", fmt.Errorf("%w: budget exhausted (%d chars)", ErrTranslationFailed, len(text))
	}

	translated, err := g.Provider.Translate(ctx, text, targetLang, sourceLang)
	if g.MinInterval > 0 && g.sleep != nil {
		g.sleep(g.MinInterval)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	g.Budget.Record(len(text))
	if g.Cache != nil {
		if err := g.Cache.Put(ctx, text, sourceLang, targetLang, translated); err != nil {
			g.Logger.LogWarning(fmt.Sprintf("translation cache write failed: %v", err))
		}
	}
	return translated, nil
}
