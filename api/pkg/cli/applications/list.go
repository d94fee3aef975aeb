package applications

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Int64("job", 0, "Job ID to list applications for")
	_ = listCmd.MarkFlagRequired("job")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List applications for a job",
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, _ := cmd.Flags().GetInt64("job")

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		applications, err := apiClient.ListApplications(cmd.Context(), jobID)
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())

		header := []string{"ID", "Candidate", "Status", "Score", "Applied"}

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

		for _, application := range applications {
			row := []string{
				fmt.Sprintf("%d", application.ID),
				application.Candidate,
				string(application.Status),
				fmt.Sprintf("%.0f%%", application.MatchScore*100),
				humanize.Time(application.Created),
			}
			table.Append(row)
		}

		table.Render()
		return nil
	},
}
