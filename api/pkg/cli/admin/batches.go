package admin

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/util"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "Inspect and control batch jobs",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		// By default run the list command
		return batchesListCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchesCmd)
	batchesCmd.AddCommand(batchesListCmd)
	batchesCmd.AddCommand(batchesTriggerCmd)
	batchesCmd.AddCommand(batchesCheckCmd)
	batchesCmd.AddCommand(batchesWatchCmd)

	batchesWatchCmd.Flags().Duration("timeout", 10*time.Minute, "Give up after this long")
}

var batchesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List batch jobs",
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		jobs, err := apiClient.AdminListBatches(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list batch jobs: %w", err)
		}

		renderBatchJobs(cmd, jobs)
		return nil
	},
}

var batchesTriggerCmd = &cobra.Command{
	Use:   "trigger [job type]",
	Short: "Fire a batch job",
	Long:  `Start a named batch job, for example recompute_matches or refresh_embeddings.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		job, err := apiClient.AdminTriggerBatch(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to trigger batch job: %w", err)
		}

		fmt.Printf("Batch job %s (%s) is %s\n", job.ID, job.Type, job.Status)
		return nil
	},
}

var batchesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Reconcile the status of running batch jobs",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		checkResp, err := apiClient.AdminCheckBatches(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to check batch jobs: %w", err)
		}

		fmt.Printf("Checked %d jobs\n", checkResp.Checked)
		renderBatchJobs(cmd, checkResp.Jobs)
		return nil
	},
}

var batchesWatchCmd = &cobra.Command{
	Use:   "watch [job ID]",
	Short: "Wait for a batch job to finish",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")

		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}

		job, err := util.WaitForBatchJob(cmd.Context(), apiClient, args[0], timeout)
		if err != nil {
			return err
		}

		if job.Status == types.BatchJobStatusFailed {
			return fmt.Errorf("batch job %s failed: %s", job.ID, job.Error)
		}
		fmt.Printf("Batch job %s completed: %d processed, %d failed\n", job.ID, job.Processed, job.Failed)
		return nil
	},
}

func renderBatchJobs(cmd *cobra.Command, jobs []*types.BatchJob) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())

	header := []string{"ID", "Type", "Status", "Progress", "Started", "Duration"}

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
		var statusStr string
		if job.Status == types.BatchJobStatusFailed && job.Error != "" {
			statusStr = fmt.Sprintf("%s (%s)", job.Status, job.Error)
		} else {
			statusStr = string(job.Status)
		}

		duration := ""
		if job.Finished != nil {
			duration = job.Finished.Sub(job.Started).Round(time.Second).String()
		}

		row := []string{
			job.ID,
			job.Type,
			statusStr,
			fmt.Sprintf("%d/%d", job.Processed, job.Total),
			humanize.Time(job.Started),
			duration,
		}
		table.Append(row)
	}

	table.Render()
}
