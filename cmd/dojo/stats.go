package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dojo/internal/ledger"
	"dojo/internal/platform"
	"dojo/internal/prompt"
)

// statsCmd shows per-platform practice counts.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-platform practice counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		catalog, err := ledger.OpenCatalog(cfg.CatalogPath())
		if err != nil {
			return err
		}
		defer catalog.Close()

		counts, err := catalog.CountByPlatform()
		if err != nil {
			return err
		}
		total, err := catalog.Count()
		if err != nil {
			return err
		}

		fmt.Println(prompt.Title("Practice stats:"))
		for _, p := range platform.All() {
			fmt.Printf("  %-12s %d\n", p, counts[string(p)])
		}
		fmt.Printf("  %-12s %d\n", "Total", total)
		return nil
	},
}
