package admin

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(evaluationCmd)
}

var evaluationCmd = &cobra.Command{
	Use:     "evaluation",
	Aliases: []string{"eval"},
	Short:   "Show offline matching-quality metrics",
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		report, err := apiClient.AdminEvaluation(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get evaluation report: %w", err)
		}

		fmt.Printf("Computed %s over %d samples\n\n",
			humanize.Time(report.ComputedAt), report.SampleCount)

		table := tablewriter.NewWriter(cmd.OutOrStdout())

		table.SetHeader([]string{"Metric", "Value"})

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

		for _, k := range sortedKeys(report.PrecisionAtK) {
			table.Append([]string{fmt.Sprintf("precision@%s", k), fmt.Sprintf("%.4f", report.PrecisionAtK[k])})
		}
		for _, k := range sortedKeys(report.RecallAtK) {
			table.Append([]string{fmt.Sprintf("recall@%s", k), fmt.Sprintf("%.4f", report.RecallAtK[k])})
		}
		table.Append([]string{"mrr", fmt.Sprintf("%.4f", report.MRR)})
		table.Append([]string{"ndcg", fmt.Sprintf("%.4f", report.NDCG)})
		table.Append([]string{"coverage", fmt.Sprintf("%.4f", report.Coverage)})

		table.Render()
		return nil
	},
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
