package matches

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/session"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your matches from the last completed run",
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		tracker := session.NewTracker(apiClient)
		recommendations, err := tracker.Hydrate(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get recommendations: %w", err)
		}

		if len(recommendations.Matches) == 0 {
			fmt.Println("No matches yet. Upload a CV with 'cvmatch cv submit' or 'cvmatch cv process'.")
			return nil
		}

		Render(cmd.OutOrStdout(), recommendations.Matches, tracker)
		return nil
	},
}
