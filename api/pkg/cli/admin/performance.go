package admin

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(performanceCmd)
}

var performanceCmd = &cobra.Command{
	Use:     "performance",
	Aliases: []string{"perf"},
	Short:   "Show per-route latency and error rates",
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		report, err := apiClient.AdminPerformance(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get performance report: %w", err)
		}

		fmt.Printf("Window: %s\n\n", time.Duration(report.WindowSeconds)*time.Second)

		table := tablewriter.NewWriter(cmd.OutOrStdout())

		table.SetHeader([]string{"Route", "Requests", "Errors", "P50", "P95", "P99"})

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

		for _, route := range report.Routes {
			table.Append([]string{
				route.Route,
				fmt.Sprintf("%d", route.RequestCount),
				fmt.Sprintf("%.2f%%", route.ErrorRate*100),
				fmt.Sprintf("%.0fms", route.P50Millis),
				fmt.Sprintf("%.0fms", route.P95Millis),
				fmt.Sprintf("%.0fms", route.P99Millis),
			})
		}

		table.Render()
		return nil
	},
}
