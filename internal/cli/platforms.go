package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List configured marketplace platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, _, err := setup()
		if err != nil {
			return err
		}
		for _, p := range cfg.Platforms {
			fmt.Printf("%s (%s)\n", p.Name, p.Key)
			fmt.Printf("  language:    %s\n", p.Language)
			fmt.Printf("  header rows: %d\n", p.HeaderRows)
			fmt.Printf("  template:    %s\n", p.TemplateFile)
			fmt.Printf("  required:    %s\n", strings.Join(p.Required, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
