package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skagen-tools/marketfill/internal/transform"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog against each platform's required attributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, rules, logger, err := setup()
		if err != nil {
			return err
		}
		pipeline := &transform.Pipeline{Config: cfg, Rules: rules, Logger: logger}
		results, err := pipeline.Validate(validateInput)
		if err != nil {
			return err
		}
		allValid := true
		for _, plat := range cfg.Platforms {
			missing := results[plat.Key]
			if len(missing) == 0 {
				fmt.Printf("  %-14s ok\n", plat.Key)
				continue
			}
			allValid = false
			fmt.Printf("  %-14s missing %d required attributes:\n", plat.Key, len(missing))
			for _, attr := range missing {
				fmt.Printf("    - %s\n", attr)
			}
		}
		if !allValid {
			return fmt.Errorf("some platforms have missing required attributes")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Path to the master product workbook")
	_ = validateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(validateCmd)
}
