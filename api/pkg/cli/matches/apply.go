package matches

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/session"
)

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(saveCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply [job ID]",
	Short: "Apply to a matched job",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid job id: %s", args[0])
		}

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		tracker := session.NewTracker(apiClient)
		if err := tracker.MarkApplied(cmd.Context(), jobID); err != nil {
			return fmt.Errorf("failed to apply: %w", err)
		}

		fmt.Printf("Applied to job %d\n", jobID)
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save [job ID]",
	Short: "Save a matched job for later",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid job id: %s", args[0])
		}

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		tracker := session.NewTracker(apiClient)
		if err := tracker.MarkSaved(cmd.Context(), jobID); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		fmt.Printf("Saved job %d\n", jobID)
		return nil
	},
}
