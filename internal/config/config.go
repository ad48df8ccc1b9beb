// Package config wires directories, platform definitions, field rules and
// provider settings for the upload converter. Everything is resolved once at
// startup and passed into components; nothing here is a mutable global.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config is the resolved runtime configuration.
type Config struct {
	DataDir   string
	InputDir  string
	OutputDir string
	ConfigDir string
	RefDir    string

	MappingFile    string
	AttributesFile string
	FieldRulesFile string
	ClientsFile    string
	UsageFile      string
	CacheFile      string

	Platforms []Platform
	DeepL     DeepLConfig
}

// DeepLConfig holds translation provider settings.
type DeepLConfig struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	MinInterval time.Duration
}

// Load resolves configuration from the environment, reading a .env file first
// when one is present. Missing values fall back to defaults rooted at dataDir.
func Load() (*Config, error) {
	// Best effort: running without a .env file is normal.
	_ = godotenv.Load()

	dataDir := stringWithDefault("MARKETFILL_DATA_DIR", "data")
	cfg := &Config{
		DataDir:   dataDir,
		InputDir:  stringWithDefault("MARKETFILL_INPUT_DIR", filepath.Join(dataDir, "input")),
		OutputDir: stringWithDefault("MARKETFILL_OUTPUT_DIR", filepath.Join(dataDir, "output")),
		ConfigDir: stringWithDefault("MARKETFILL_CONFIG_DIR", filepath.Join(dataDir, "config")),
		RefDir:    stringWithDefault("MARKETFILL_REF_DIR", filepath.Join(dataDir, "ref")),
		DeepL: DeepLConfig{
			APIKey:      stringWithDefault("DEEPL_API_KEY", os.Getenv("DEEPL_key")),
			BaseURL:     stringWithDefault("DEEPL_API_URL", "https://api-free.deepl.com"),
			Timeout:     durationWithDefault("DEEPL_TIMEOUT", 30*time.Second),
			MinInterval: durationWithDefault("DEEPL_MIN_INTERVAL", 1100*time.Millisecond),
		},
	}
	cfg.MappingFile = filepath.Join(cfg.ConfigDir, "mapping.xlsx")
	cfg.AttributesFile = filepath.Join(cfg.ConfigDir, "attributes.xlsx")
	cfg.FieldRulesFile = filepath.Join(cfg.ConfigDir, "fields.yaml")
	cfg.ClientsFile = filepath.Join(cfg.ConfigDir, "clients.csv")
	cfg.UsageFile = filepath.Join(cfg.ConfigDir, "deepl_usage.json")
	cfg.CacheFile = filepath.Join(cfg.ConfigDir, "translations.db")
	cfg.Platforms = DefaultPlatforms(cfg.RefDir, cfg.OutputDir)
	return cfg, nil
}

// EnsureDirectories creates the data directories if they do not exist yet.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.DataDir, c.InputDir, c.OutputDir, c.ConfigDir, c.RefDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Platform returns the platform definition for a key, or nil when unknown.
func (c *Config) Platform(key string) *Platform {
	for i := range c.Platforms {
		if c.Platforms[i].Key == key {
			return &c.Platforms[i]
		}
	}
	return nil
}
