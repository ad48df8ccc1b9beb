// Package cli wires the marketfill subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skagen-tools/marketfill/internal/config"
	"github.com/skagen-tools/marketfill/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "marketfill",
	Short: "Convert a master product catalog into marketplace upload sheets",
	Long: `marketfill reads one master product workbook and produces
one upload workbook per marketplace platform, driven by a declarative
column-mapping table. It can also pre-translate empty language columns
of the catalog via DeepL.

Commands:
  transform  Generate the per-platform upload workbooks
  translate  Fill empty language columns of the catalog from English
  validate   Check the catalog against each platform's required fields
  platforms  List configured marketplace platforms
  usage      Show DeepL free-tier usage counters
  clients    List configured clients and their per-platform brands`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the console logger shared by commands.
func setup() (*config.Config, *config.FieldRules, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	rules, err := config.LoadFieldRules(cfg.FieldRulesFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load field rules: %w", err)
	}
	return cfg, rules, logging.NewConsole(), nil
}
