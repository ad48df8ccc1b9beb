package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skagen-tools/marketfill/internal/config"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List configured clients and their per-platform brands",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, _, err := setup()
		if err != nil {
			return err
		}
		clients, err := config.LoadClients(cfg.ClientsFile)
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			fmt.Printf("No clients configured (%s)\n", cfg.ClientsFile)
			return nil
		}
		for _, c := range clients {
			fmt.Printf("%s\n", c.Name)
			for _, p := range cfg.Platforms {
				if brand := c.BrandFor(p.Key); brand != "" {
					fmt.Printf("  %-14s %s\n", p.Key, brand)
				}
			}
			if c.Notes != "" {
				fmt.Printf("  notes: %s\n", c.Notes)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}
