package jobs

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "jobs",
	Short:   "Manage job postings",
	Aliases: []string{"j"},
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		// By default run the list command
		return listCmd.RunE(cmd, args)
	},
}

func New() *cobra.Command {
	return rootCmd
}
