package cvmatch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/version"
)

func newVersionCommand() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version.GetVersion())
		},
	}
	return versionCmd
}
