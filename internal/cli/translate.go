package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skagen-tools/marketfill/internal/catalog"
	"github.com/skagen-tools/marketfill/internal/translate"
	"github.com/skagen-tools/marketfill/internal/translate/cache"
	"github.com/skagen-tools/marketfill/internal/translate/deepl"
)

var (
	translateInput       string
	translatePlaceholder bool
	translateNoCache     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Fill empty language columns of the catalog from the English source",
	Long: `Scans the catalog for translatable field groups (title_*, description_*, ...),
translates empty language variants from the _en column and writes the catalog
back in place. Pre-filled cells are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, rules, logger, err := setup()
		if err != nil {
			return err
		}

		cat, err := catalog.Load(translateInput)
		if err != nil {
			return err
		}

		var gate *translate.Gate
		if translatePlaceholder {
			gate = translate.NewGate(translate.Placeholder{}, translate.UnlimitedBudget{}, rules, logger)
		} else {
			usage, err := deepl.NewUsageTracker(cfg.UsageFile)
			if err != nil {
				return err
			}
			client := deepl.New(cfg.DeepL.APIKey, cfg.DeepL.BaseURL, cfg.DeepL.Timeout)
			gate = translate.NewGate(client, usage, rules, logger)
			gate.MinInterval = cfg.DeepL.MinInterval
		}

		if !translateNoCache && !translatePlaceholder {
			store, err := cache.Open(cfg.CacheFile)
			if err != nil {
				logger.LogWarning(fmt.Sprintf("translation cache unavailable: %v", err))
			} else {
				defer store.Close()
				gate.Cache = store
			}
		}

		stats := gate.Run(cmd.Context(), cat)
		if err := cat.Save(translateInput); err != nil {
			return err
		}
		fmt.Printf("Translations made: %d, skipped (already filled): %d, failed: %d\n",
			stats.Made, stats.Skipped, stats.Failed)
		for _, base := range stats.GroupsSkipped {
			fmt.Printf("  group %q skipped: no English source column\n", base)
		}
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateInput, "input", "i", "", "Path to the master product workbook")
	translateCmd.Flags().BoolVar(&translatePlaceholder, "placeholder", false, "Tag text with [LANG] instead of calling DeepL")
	translateCmd.Flags().BoolVar(&translateNoCache, "no-cache", false, "Bypass the translation cache")
	_ = translateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(translateCmd)
}
