package config

import "path/filepath"

// Platform describes one marketplace target: where its reference template
// lives, where output goes, and how its upload sheet is laid out.
type Platform struct {
	Key          string // identifier used in mapping columns, e.g. "castorama_fr"
	Name         string // display name
	TemplateFile string // reference template path
	OutputFile   string // generated output path
	HeaderRows   int    // leading rows that must never be touched
	Language     string // target language for translated fields
	Required     []string
}

// DefaultPlatforms returns the built-in marketplace registry. Adding a
// platform here plus a `<key>_column` column in the mapping workbook is all it
// takes to support a new target.
func DefaultPlatforms(refDir, outDir string) []Platform {
	return []Platform{
		{
			Key:          "castorama_fr",
			Name:         "Castorama FR",
			TemplateFile: filepath.Join(refDir, "Castorama_FR_upload.xlsx"),
			OutputFile:   filepath.Join(outDir, "Castorama_FR_generated.xlsx"),
			HeaderRows:   1,
			Language:     "fr",
			Required:     []string{"ean", "brand", "title_fr", "description_fr"},
		},
		{
			Key:          "castorama_pl",
			Name:         "Castorama PL",
			TemplateFile: filepath.Join(refDir, "Castorama_PL_upload.xlsx"),
			OutputFile:   filepath.Join(outDir, "Castorama_PL_generated.xlsx"),
			HeaderRows:   1,
			Language:     "pl",
			Required:     []string{"ean", "brand", "title_pl"},
		},
		{
			Key:          "leroy_merlin",
			Name:         "Leroy Merlin",
			TemplateFile: filepath.Join(refDir, "LM_product_upload.xlsx"),
			OutputFile:   filepath.Join(outDir, "LM_product_generated.xlsx"),
			HeaderRows:   2,
			Language:     "fr",
			Required:     []string{"ean", "brand", "title_fr", "category"},
		},
		{
			Key:          "maxeda_be",
			Name:         "Maxeda BE",
			TemplateFile: filepath.Join(refDir, "Maxeda_BE_upload.xlsx"),
			OutputFile:   filepath.Join(outDir, "Maxeda_BE_generated.xlsx"),
			HeaderRows:   1,
			Language:     "fr",
			Required:     []string{"ean", "brand", "title_fr", "description_fr"},
		},
		{
			Key:          "maxeda_nl",
			Name:         "Maxeda NL",
			TemplateFile: filepath.Join(refDir, "Maxeda_NL_upload.xlsx"),
			OutputFile:   filepath.Join(outDir, "Maxeda_NL_generated.xlsx"),
			HeaderRows:   1,
			Language:     "nl",
			Required:     []string{"ean", "brand", "title_nl", "description_nl"},
		},
	}
}
