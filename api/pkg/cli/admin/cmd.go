package admin

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operational dashboards and batch jobs",
	Long:  `Read-only platform metrics plus batch job control. Requires an admin account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func New() *cobra.Command {
	return rootCmd
}
