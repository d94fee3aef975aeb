package applications

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func init() {
	for _, cmd := range []*cobra.Command{
		newDispositionCmd("shortlist", types.ApplicationStatusShortlisted),
		newDispositionCmd("interview", types.ApplicationStatusInterviewed),
		newDispositionCmd("hire", types.ApplicationStatusHired),
		newDispositionCmd("reject", types.ApplicationStatusRejected),
	} {
		rootCmd.AddCommand(cmd)
	}
}

// newDispositionCmd builds one pipeline-transition command. Each moves an
// application to a status and logs the matching disposition interaction.
func newDispositionCmd(use string, status types.ApplicationStatus) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [application ID]", use),
		Short: fmt.Sprintf("Move an application to %s", status),
		Long:  ``,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid application id: %s", args[0])
			}
			jobID, _ := cmd.Flags().GetInt64("job")

			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			application, err := apiClient.UpdateApplicationStatus(cmd.Context(), jobID, applicationID, status)
			if err != nil {
				return fmt.Errorf("failed to update application: %w", err)
			}

			logDisposition(cmd.Context(), apiClient, application)

			fmt.Printf("Application %d moved to %s\n", application.ID, application.Status)
			return nil
		},
	}
	cmd.Flags().Int64("job", 0, "Job ID the application belongs to")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

// logDisposition records the audit event for a pipeline transition. Fire
// and forget: the status change already happened, a failed audit write
// must not roll the command back.
func logDisposition(ctx context.Context, apiClient client.Client, application *types.Application) {
	action, ok := application.Status.DispositionAction()
	if !ok {
		return
	}

	_, err := apiClient.LogInteraction(ctx, &types.InteractionRequest{
		JobID:    application.JobID,
		CVID:     application.CVID,
		Action:   action,
		ClientID: system.GenerateUUID(),
	})
	if err != nil {
		log.Warn().Err(err).Int64("job_id", application.JobID).Msg("failed to log disposition interaction")
	}
}
