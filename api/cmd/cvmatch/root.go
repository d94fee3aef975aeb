package cvmatch

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/admin"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/applications"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/auth"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/cv"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/jobs"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/matches"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/cli/premium"
)

var Fatal = FatalErrorHandler

func NewRootCmd() *cobra.Command {
	var logLevel string

	RootCmd := &cobra.Command{
		Use:   getCommandLineExecutable(),
		Short: "CVMatch",
		Long:  `Client for the CVMatch job-matching platform`,
		PersistentPreRun: func(*cobra.Command, []string) {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}

	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	RootCmd.AddCommand(cv.New())
	RootCmd.AddCommand(matches.New())
	RootCmd.AddCommand(jobs.New())
	RootCmd.AddCommand(applications.New())
	RootCmd.AddCommand(admin.New())
	RootCmd.AddCommand(premium.New())

	RootCmd.AddCommand(auth.NewRegisterCmd())
	RootCmd.AddCommand(auth.NewLoginCmd())
	RootCmd.AddCommand(auth.NewLogoutCmd())
	RootCmd.AddCommand(auth.NewWhoamiCmd())

	RootCmd.AddCommand(newVersionCommand())

	return RootCmd
}

func Execute() {
	RootCmd := NewRootCmd()
	RootCmd.SetContext(context.Background())
	RootCmd.SetOutput(os.Stdout)

	if err := RootCmd.Execute(); err != nil {
		Fatal(RootCmd, err.Error(), 1)
	}
}
