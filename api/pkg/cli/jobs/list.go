package jobs

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("company", "", "Filter by company name")
	listCmd.Flags().String("location", "", "Filter by location")
	listCmd.Flags().Int("limit", 0, "Maximum number of jobs to return")
	listCmd.Flags().Int("offset", 0, "Offset into the result set")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List job postings",
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		company, _ := cmd.Flags().GetString("company")
		location, _ := cmd.Flags().GetString("location")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		jobs, err := apiClient.ListJobs(cmd.Context(), &client.JobFilter{
			Company:  company,
			Location: location,
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())

		header := []string{"ID", "Title", "Company", "Location", "Salary", "Created"}

		table.SetHeader(header)

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

		for _, job := range jobs {
			row := []string{
				fmt.Sprintf("%d", job.ID),
				job.Title,
				job.Company,
				job.Location,
				job.SalaryRange,
				humanize.Time(job.Created),
			}
			table.Append(row)
		}

		table.Render()
		return nil
	},
}
