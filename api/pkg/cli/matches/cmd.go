package matches

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/session"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

var rootCmd = &cobra.Command{
	Use:     "matches",
	Short:   "View and act on your job matches",
	Aliases: []string{"m"},
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		// By default run the list command
		return listCmd.RunE(cmd, args)
	},
}

func New() *cobra.Command {
	return rootCmd
}

// Render prints a match table. The tracker is optional; when set, applied
// and saved membership is shown per row.
func Render(w io.Writer, matches []*types.Match, tracker *session.Tracker) {
	table := tablewriter.NewWriter(w)

	header := []string{"Job", "Title", "Company", "Score", "Location", "Salary"}
	if tracker != nil {
		header = append(header, "Applied", "Saved")
	}
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

	for _, m := range matches {
		row := []string{
			fmt.Sprintf("%d", m.JobID),
			m.JobTitle,
			m.Company,
			fmt.Sprintf("%.0f%%", m.MatchScore*100),
			m.Location,
			m.SalaryRange,
		}
		if tracker != nil {
			row = append(row, marker(tracker.IsApplied(m.JobID)), marker(tracker.IsSaved(m.JobID)))
		}
		table.Append(row)
	}

	table.Render()
}

func marker(set bool) string {
	if set {
		return "*"
	}
	return ""
}
