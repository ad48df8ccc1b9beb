// Package catalog reads and writes the master product workbook: one row per
// product, a flat attribute→value mapping keyed by the header row.
package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/skagen-tools/marketfill/internal/sheet"
)

// Product is one catalog row. Values are keyed by lower-cased attribute name;
// empty cells are simply absent.
type Product map[string]string

// Get returns the product's value for an attribute, case-insensitively.
func (p Product) Get(attribute string) string {
	return p[strings.ToLower(attribute)]
}

// Has reports whether the product carries a non-empty value for an attribute.
func (p Product) Has(attribute string) bool {
	return p.Get(attribute) != ""
}

// Set stores a value under an attribute name.
func (p Product) Set(attribute, value string) {
	p[strings.ToLower(attribute)] = value
}

// Catalog is the loaded product source. Headers keep their original spelling
// and order so a save round-trips the sheet layout.
type Catalog struct {
	Headers  []string
	Products []Product
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.Products) }

// Load reads the catalog from the first sheet of a workbook. An unreadable
// catalog is fatal for the whole run, unlike config tables.
func Load(path string) (*Catalog, error) {
	t, err := sheet.ReadTable(path, "")
	if err != nil {
		return nil, fmt.Errorf("load product catalog %s: %w", path, err)
	}
	c := &Catalog{Headers: t.Headers}
	for _, row := range t.Rows {
		p := make(Product, len(row))
		for k, v := range row {
			p.Set(k, v)
		}
		c.Products = append(c.Products, p)
	}
	return c, nil
}

// Save writes the catalog back as a plain header+rows workbook. The product
// source is data-only, so rebuilding it loses nothing.
func (c *Catalog) Save(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)

	for i, h := range c.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}
	}
	for rowIdx, p := range c.Products {
		for colIdx, h := range c.Headers {
			val := p.Get(h)
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	return nil
}
