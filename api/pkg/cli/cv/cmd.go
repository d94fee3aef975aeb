package cv

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "cv",
	Short:   "Upload and process your CV",
	Aliases: []string{"resume"},
	Long:    `Upload a CV for batch matching or drive it through the interactive processing flow.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func New() *cobra.Command {
	return rootCmd
}
