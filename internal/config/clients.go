package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Client holds client-specific brand names per platform. The brand column in
// upload sheets differs by marketplace casing conventions, so each platform
// carries its own value.
type Client struct {
	Name   string
	Brands map[string]string // platform key → brand name
	Notes  string
}

// BrandFor returns the client's brand for a platform, empty when unset.
func (c *Client) BrandFor(platform string) string {
	return c.Brands[platform]
}

// LoadClients reads the client table from a CSV file with a `client_name`
// column, one `brand_<platform>` column per platform, and an optional `notes`
// column. A missing file yields an empty list, not an error.
func LoadClients(path string) ([]Client, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open clients file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read clients file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	var clients []Client
	for _, rec := range records[1:] {
		c := Client{Brands: map[string]string{}}
		for i, col := range header {
			if i >= len(rec) {
				break
			}
			val := strings.TrimSpace(rec[i])
			switch {
			case col == "client_name":
				c.Name = val
			case col == "notes":
				c.Notes = val
			case strings.HasPrefix(col, "brand_") && val != "":
				c.Brands[strings.TrimPrefix(col, "brand_")] = val
			}
		}
		if c.Name != "" {
			clients = append(clients, c)
		}
	}
	return clients, nil
}

// FindClient returns the named client, or nil when absent.
func FindClient(clients []Client, name string) *Client {
	for i := range clients {
		if clients[i].Name == name {
			return &clients[i]
		}
	}
	return nil
}
