package translate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skagen-tools/marketfill/internal/catalog"
	"github.com/skagen-tools/marketfill/internal/config"
	"github.com/skagen-tools/marketfill/internal/logging"
)

type fakeProvider struct {
	calls    int
	failLang string
}

func (f *fakeProvider) Translate(_ context.Context, text, targetLang, _ string) (string, error) {
	f.calls++
	if targetLang == f.failLang {
		return "", fmt.Errorf("simulated outage")
	}
	return "[" + targetLang + "] " + text, nil
}

type countingBudget struct {
	remaining int
	recorded  int
}

func (b *countingBudget) CanTranslate(chars int) bool { return chars <= b.remaining }
func (b *countingBudget) Record(chars int) {
	b.remaining -= chars
	b.recorded += chars
}

type mapCache struct {
	entries map[string]string
	puts    int
}

func cacheKey(text, src, tgt string) string { return src + "|" + tgt + "|" + text }

func (c *mapCache) Get(_ context.Context, text, src, tgt string) (string, bool) {
	v, ok := c.entries[cacheKey(text, src, tgt)]
	return v, ok
}

func (c *mapCache) Put(_ context.Context, text, src, tgt, translation string) error {
	if c.entries == nil {
		c.entries = make(map[string]string)
	}
	c.entries[cacheKey(text, src, tgt)] = translation
	c.puts++
	return nil
}

func testCatalog(headers []string, products ...catalog.Product) *catalog.Catalog {
	return &catalog.Catalog{Headers: headers, Products: products}
}

func newTestGate(provider Provider) *Gate {
	g := NewGate(provider, nil, config.DefaultFieldRules(), logging.Discard())
	g.sleep = func(time.Duration) {}
	return g
}

func TestDiscoverGroups(t *testing.T) {
	cat := testCatalog([]string{"EAN", "Title_EN", "title_fr", "Title_DE", "description_en", "description_nl", "weight"})
	g := newTestGate(&fakeProvider{})

	groups := g.DiscoverGroups(cat)
	require.Len(t, groups, 2)

	assert.Equal(t, "description", groups[0].Base)
	assert.Equal(t, "description_en", groups[0].Source)
	assert.Equal(t, []string{"description_nl"}, groups[0].Targets)

	assert.Equal(t, "title", groups[1].Base)
	assert.Equal(t, "title_en", groups[1].Source)
	assert.Equal(t, []string{"title_de", "title_fr"}, groups[1].Targets)
}

func TestDiscoverGroups_UnknownSuffixIgnored(t *testing.T) {
	cat := testCatalog([]string{"title_en", "title_xx", "title_frfr"})
	g := newTestGate(&fakeProvider{})

	groups := g.DiscoverGroups(cat)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Targets)
}

func TestRun_FillsEmptyTargets(t *testing.T) {
	cat := testCatalog(
		[]string{"title_en", "title_fr", "title_de"},
		catalog.Product{"title_en": "Hammer"},
	)
	provider := &fakeProvider{}
	g := newTestGate(provider)

	stats := g.Run(context.Background(), cat)
	assert.Equal(t, 2, stats.Made)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, "[FR] Hammer", cat.Products[0].Get("title_fr"))
	assert.Equal(t, "[DE] Hammer", cat.Products[0].Get("title_de"))
}

func TestRun_NeverOverwritesExistingText(t *testing.T) {
	cat := testCatalog(
		[]string{"title_en", "title_fr"},
		catalog.Product{"title_en": "Hammer", "title_fr": "Marteau"},
	)
	provider := &fakeProvider{}
	g := newTestGate(provider)

	stats := g.Run(context.Background(), cat)
	assert.Equal(t, 0, stats.Made)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, "Marteau", cat.Products[0].Get("title_fr"))
}

func TestRun_EmptySourceLeavesRowAlone(t *testing.T) {
	cat := testCatalog(
		[]string{"title_en", "title_fr"},
		catalog.Product{"title_en": "  "},
		catalog.Product{"title_en": "Hammer"},
	)
	provider := &fakeProvider{}
	g := newTestGate(provider)

	stats := g.Run(context.Background(), cat)
	assert.Equal(t, 1, stats.Made)
	assert.False(t, cat.Products[0].Has("title_fr"))
}

func TestRun_GroupWithoutSourceIsSkipped(t *testing.T) {
	cat := testCatalog(
		[]string{"title_fr", "title_de"},
		catalog.Product{"title_fr": "Marteau"},
	)
	provider := &fakeProvider{}
	g := newTestGate(provider)

	stats := g.Run(context.Background(), cat)
	assert.Equal(t, []string{"title"}, stats.GroupsSkipped)
	assert.Equal(t, 0, provider.calls)
}

func TestRun_ProviderFailureLeavesCellEmpty(t *testing.T) {
	cat := testCatalog(
		[]string{"title_en", "title_fr", "title_de"},
		catalog.Product{"title_en": "Hammer"},
	)
	provider := &fakeProvider{failLang: "DE"}
	g := newTestGate(provider)

	stats := g.Run(context.Background(), cat)
	assert.Equal(t, 1, stats.Made)
	assert.Equal(t, 1, stats.Failed)
	assert.False(t, cat.Products[0].Has("title_de"))
	assert.Equal(t, "[FR] Hammer", cat.Products[0].Get("title_fr"))
}

func TestTranslateOne_CacheHitSkipsProviderAndBudget(t *testing.T) {
	provider := &fakeProvider{}
	budget := &countingBudget{remaining: 0}
	cache := &mapCache{entries: map[string]string{
		cacheKey("Hammer", "EN", "FR"): "Marteau",
	}}
	g := newTestGate(provider)
	g.Budget = budget
	g.Cache = cache

	out, err := g.translateOne(context.Background(), "Hammer", "FR")
	require.NoError(t, err)
	assert.Equal(t, "Marteau", out)
	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, 0, budget.recorded)
}

func TestTranslateOne_MissPopulatesCacheAndBudget(t *testing.T) {
	provider := &fakeProvider{}
	budget := &countingBudget{remaining: 100}
	cache := &mapCache{}
	g := newTestGate(provider)
	g.Budget = budget
	g.Cache = cache

	out, err := g.translateOne(context.Background(), "Hammer", "FR")
	require.NoError(t, err)
	assert.Equal(t, "[FR] Hammer", out)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, len("Hammer"), budget.recorded)

	// Second call comes from the cache.
	out, err = g.translateOne(context.Background(), "Hammer", "FR")
	require.NoError(t, err)
	assert.Equal(t, "[FR] Hammer", out)
	assert.Equal(t, 1, provider.calls)
}

func TestTranslateOne_BudgetExhausted(t *testing.T) {
	provider := &fakeProvider{}
	g := newTestGate(provider)
	g.Budget = &countingBudget{remaining: 3}

	_, err := g.translateOne(context.Background(), "Hammer", "FR")
	require.ErrorIs(t, err, ErrTranslationFailed)
	assert.Equal(t, 0, provider.calls)
}

func TestRun_PausesBetweenProviderCalls(t *testing.T) {
	cat := testCatalog(
		[]string{"title_en", "title_fr", "title_de"},
		catalog.Product{"title_en": "Hammer"},
	)
	g := newTestGate(&fakeProvider{})
	g.MinInterval = 1100 * time.Millisecond
	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }

	g.Run(context.Background(), cat)
	require.Len(t, slept, 2)
	assert.Equal(t, 1100*time.Millisecond, slept[0])
}
