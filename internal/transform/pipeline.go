package transform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skagen-tools/marketfill/internal/catalog"
	"github.com/skagen-tools/marketfill/internal/config"
	"github.com/skagen-tools/marketfill/internal/logging"
	"github.com/skagen-tools/marketfill/internal/mapping"
	"github.com/skagen-tools/marketfill/internal/sheet"
)

// Result records the outcome for one platform.
type Result struct {
	Platform   string
	OutputFile string
	Products   int
	Err        error
}

// Summary aggregates a whole generation run.
type Summary struct {
	Results []Result
}

// Generated returns the successful platform → output file pairs.
func (s *Summary) Generated() map[string]string {
	out := make(map[string]string)
	for _, r := range s.Results {
		if r.Err == nil {
			out[r.Platform] = r.OutputFile
		}
	}
	return out
}

// SuccessRate returns the fraction of platforms that produced output, 0..1.
func (s *Summary) SuccessRate() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	ok := 0
	for _, r := range s.Results {
		if r.Err == nil {
			ok++
		}
	}
	return float64(ok) / float64(len(s.Results))
}

// Pipeline materializes one output workbook per platform from the product
// catalog. Configuration tables are loaded once per run; a broken config
// table degrades to "nothing mapped" with a warning, while a missing
// reference template fails that platform only.
type Pipeline struct {
	Config *config.Config
	Rules  *config.FieldRules
	Client *config.Client // optional; injects per-platform brand values
	Logger logging.Logger
}

// Run processes the catalog at inputPath for the given platforms (all
// configured platforms when the filter is empty).
func (p *Pipeline) Run(inputPath string, platformKeys []string) (*Summary, error) {
	table, err := mapping.Load(p.Config.MappingFile)
	if err != nil {
		p.Logger.LogWarning(fmt.Sprintf("mapping table unavailable, continuing unmapped: %v", err))
	}
	values, err := mapping.LoadValues(p.Config.AttributesFile)
	if err != nil {
		p.Logger.LogWarning(fmt.Sprintf("attribute values unavailable, continuing without: %v", err))
	}
	p.injectClientBrands(values)

	cat, err := catalog.Load(inputPath)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		p.Logger.LogWarning("product catalog is empty, outputs will carry no data rows")
	}
	p.Logger.Log(fmt.Sprintf("loaded %d products, %d attribute mappings", cat.Len(), table.Len()))

	resolver := NewResolver(table, values, p.Rules, p.Logger)

	platforms := p.selectPlatforms(platformKeys)
	summary := &Summary{}
	for _, plat := range platforms {
		res := p.runPlatform(plat, cat, resolver)
		if res.Err != nil {
			p.Logger.LogError(fmt.Sprintf("%s skipped", plat.Name), res.Err)
		} else {
			p.Logger.LogSuccess(fmt.Sprintf("%s: %d products -> %s", plat.Name, res.Products, res.OutputFile))
		}
		summary.Results = append(summary.Results, res)
	}

	if len(summary.Results) > 0 && len(summary.Generated()) == 0 {
		return summary, fmt.Errorf("no platform produced output")
	}
	return summary, nil
}

func (p *Pipeline) runPlatform(plat config.Platform, cat *catalog.Catalog, resolver *Resolver) Result {
	res := Result{Platform: plat.Key, OutputFile: plat.OutputFile}

	wb, err := sheet.OpenWorkbook(plat.TemplateFile)
	if err != nil {
		res.Err = err
		return res
	}
	defer wb.Close()

	rows := make([]ResolvedRow, 0, cat.Len())
	for _, product := range cat.Products {
		rows = append(rows, resolver.Resolve(product, plat.Key))
	}

	mat := &Materializer{HeaderRows: plat.HeaderRows, Logger: p.Logger}
	written, err := mat.Materialize(wb, rows)
	if err != nil {
		res.Err = err
		return res
	}
	res.Products = written

	if err := os.MkdirAll(filepath.Dir(plat.OutputFile), 0o755); err != nil {
		res.Err = fmt.Errorf("create output dir: %w", err)
		return res
	}
	if err := wb.SaveAs(plat.OutputFile); err != nil {
		res.Err = fmt.Errorf("save output %s: %w", plat.OutputFile, err)
		return res
	}
	return res
}

func (p *Pipeline) selectPlatforms(keys []string) []config.Platform {
	if len(keys) == 0 {
		return p.Config.Platforms
	}
	var out []config.Platform
	for _, key := range keys {
		if plat := p.Config.Platform(key); plat != nil {
			out = append(out, *plat)
		} else {
			p.Logger.LogWarning(fmt.Sprintf("unknown platform %q ignored", key))
		}
	}
	return out
}

func (p *Pipeline) injectClientBrands(values *mapping.ValueStore) {
	if p.Client == nil {
		return
	}
	for _, plat := range p.Config.Platforms {
		if brand := p.Client.BrandFor(plat.Key); brand != "" {
			values.SetPlatformValue("brand", plat.Key, brand)
		}
	}
}

// Validate checks the catalog against each platform's required attributes and
// returns platform key → missing attribute names. An attribute is missing when
// no product carries a value for it.
func (p *Pipeline) Validate(inputPath string) (map[string][]string, error) {
	cat, err := catalog.Load(inputPath)
	if err != nil {
		return nil, err
	}
	results := make(map[string][]string)
	for _, plat := range p.Config.Platforms {
		var missing []string
		for _, attr := range plat.Required {
			if !catalogHasValue(cat, attr) {
				missing = append(missing, attr)
			}
		}
		results[plat.Key] = missing
	}
	return results, nil
}

func catalogHasValue(cat *catalog.Catalog, attribute string) bool {
	for _, product := range cat.Products {
		if product.Has(attribute) {
			return true
		}
	}
	return false
}
