package applications

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "applications",
	Short:   "Triage applicants on your job postings",
	Aliases: []string{"apps"},
	Long:    ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		// By default run the list command
		return listCmd.RunE(cmd, args)
	},
}

func New() *cobra.Command {
	return rootCmd
}
