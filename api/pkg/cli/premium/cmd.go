// Package premium toggles the premium-flow preference, the CLI analogue
// of the web client's browser-storage flag. It only changes the default
// for 'cvmatch cv process'; entitlement is checked server side.
package premium

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/credstore"
)

var rootCmd = &cobra.Command{
	Use:   "premium",
	Short: "Toggle the premium processing flow",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCmd.RunE(cmd, args)
	},
}

func New() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(statusCmd)
}

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Default to the premium flow",
	RunE: func(*cobra.Command, []string) error {
		return setPremium(true)
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Default to the standard flow",
	RunE: func(*cobra.Command, []string) error {
		return setPremium(false)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current default flow",
	RunE: func(*cobra.Command, []string) error {
		creds, err := credstore.Load()
		if err != nil {
			return err
		}
		if creds.Premium {
			fmt.Println("Premium flow is on")
		} else {
			fmt.Println("Premium flow is off")
		}
		return nil
	},
}

func setPremium(on bool) error {
	creds, err := credstore.Load()
	if err != nil {
		return err
	}
	creds.Premium = on
	if err := credstore.Save(creds); err != nil {
		return err
	}
	if on {
		fmt.Println("Premium flow enabled")
	} else {
		fmt.Println("Premium flow disabled")
	}
	return nil
}
