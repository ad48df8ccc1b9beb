package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skagen-tools/marketfill/internal/translate/deepl"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show DeepL free-tier usage counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, _, err := setup()
		if err != nil {
			return err
		}
		tracker, err := deepl.NewUsageTracker(cfg.UsageFile)
		if err != nil {
			return err
		}
		u := tracker.Usage()
		fmt.Printf("Today:      %d characters, %d requests (limit %d requests/day)\n",
			u.DayCharacters, u.DayRequests, deepl.DailyRequestLimit)
		fmt.Printf("This month: %d / %d characters\n",
			u.MonthCharacters, deepl.MonthlyCharacterLimit)
		fmt.Printf("Remaining:  %d characters, %d requests today\n",
			u.RemainingChars, u.RemainingRequests)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
