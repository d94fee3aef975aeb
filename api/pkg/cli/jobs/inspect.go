package jobs

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("output", "yaml", "Output format. One of: json|yaml")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [job ID]",
	Short: "Inspect a job posting",
	Long:  `Retrieve and display one job posting in JSON or YAML format.`,
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

		job, err := apiClient.GetJob(cmd.Context(), jobID)
		if err != nil {
			return fmt.Errorf("failed to get job: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		switch output {
		case "json":
			bts, err := json.MarshalIndent(job, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(bts))
		case "yaml":
			bts, err := yaml.Marshal(job)
			if err != nil {
				return err
			}
			fmt.Print(string(bts))
		default:
			return fmt.Errorf("invalid output format: %s", output)
		}
		return nil
	},
}
