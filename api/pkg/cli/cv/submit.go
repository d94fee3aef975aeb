package cv

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/config"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/session"
)

func init() {
	rootCmd.AddCommand(submitCmd)
}

var submitCmd = &cobra.Command{
	Use:   "submit [cv.pdf]",
	Short: "Submit a CV for batch matching",
	Long: `Upload a CV without the interactive flow. The backend parses and matches it
in the next batch run; results appear under 'cvmatch matches list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, err := client.NewClientFromEnv()
		if err != nil {
			return err
		}
		cfg, err := config.LoadCliConfig()
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		runner := session.NewRunnerFromClient(apiClient, cfg.StreamIdleTimeout)

		sess, err := runner.Submit(cmd.Context(), args[0], file)
		if err != nil {
			return err
		}

		snapshot := sess.Snapshot()
		fmt.Printf("CV submitted, id %d. Check back with 'cvmatch matches list' once the next batch run completes.\n", snapshot.CVID)
		return nil
	},
}
