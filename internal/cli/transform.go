package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skagen-tools/marketfill/internal/config"
	"github.com/skagen-tools/marketfill/internal/transform"
)

var (
	transformInput     string
	transformPlatforms []string
	transformClient    string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Generate one upload workbook per platform from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, rules, logger, err := setup()
		if err != nil {
			return err
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}

		var client *config.Client
		if transformClient != "" {
			clients, err := config.LoadClients(cfg.ClientsFile)
			if err != nil {
				return err
			}
			client = config.FindClient(clients, transformClient)
			if client == nil {
				return fmt.Errorf("unknown client %q", transformClient)
			}
		}

		pipeline := &transform.Pipeline{Config: cfg, Rules: rules, Client: client, Logger: logger}
		summary, err := pipeline.Run(transformInput, transformPlatforms)
		if err != nil {
			return err
		}

		fmt.Println("Transformation summary:")
		for _, res := range summary.Results {
			if res.Err != nil {
				fmt.Printf("  %-14s FAILED: %v\n", res.Platform, res.Err)
				continue
			}
			fmt.Printf("  %-14s %d products -> %s\n", res.Platform, res.Products, res.OutputFile)
		}
		fmt.Printf("Success rate: %.1f%%\n", summary.SuccessRate()*100)
		return nil
	},
}

func init() {
	transformCmd.Flags().StringVarP(&transformInput, "input", "i", "", "Path to the master product workbook")
	transformCmd.Flags().StringSliceVarP(&transformPlatforms, "platform", "p", nil, "Platform keys to generate (default: all)")
	transformCmd.Flags().StringVarP(&transformClient, "client", "c", "", "Client whose brand values to inject")
	_ = transformCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(transformCmd)
}
