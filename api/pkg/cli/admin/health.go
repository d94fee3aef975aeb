package admin

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(healthCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show backend service health and cache stats",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		report, err := apiClient.AdminHealth(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get health report: %w", err)
		}

		fmt.Printf("Status: %s, up %s\n\n", report.Status,
			time.Duration(report.UptimeSeconds)*time.Second)

		table := tablewriter.NewWriter(cmd.OutOrStdout())

		table.SetHeader([]string{"Service", "Status"})

		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding(" ")
		table.SetNoWhiteSpace(false)

		for service, status := range report.Services {
			table.Append([]string{service, status})
		}

		table.Render()

		if report.Cache != nil {
			cache := report.Cache
			fmt.Printf("\nCache: %d hits / %d misses (%.1f%% hit rate), %d keys, %s used, %d evictions\n",
				cache.Hits, cache.Misses, cache.HitRate*100,
				cache.Keys, humanize.IBytes(cache.UsedMemoryBytes), cache.Evictions)
		}
		return nil
	},
}
