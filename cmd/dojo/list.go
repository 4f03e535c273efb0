package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dojo/internal/ledger"
	"dojo/internal/prompt"
)

var listLimit int

// listCmd shows the most recent catalog rows.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently practiced problems",
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

		rows, err := catalog.Recent(listLimit)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No problems practiced yet.")
			return nil
		}

		fmt.Println(prompt.Title("Recently practiced:"))
		for _, r := range rows {
			tags := ""
			if len(r.Tags) > 0 {
				tags = fmt.Sprintf("  [%v]", r.Tags)
			}
			fmt.Printf("%4d  %-10s  %s/%s  (%s)%s\n",
				r.ID, r.Platform, r.ContestID, r.ProblemID, r.Status, tags)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum rows to show")
}
