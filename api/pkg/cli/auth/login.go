// Package auth holds the root-level account commands: register, login,
// logout and whoami. The bearer token from login is written to the
// credentials file and attached to every later API call.
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/config"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/credstore"
)

func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a bearer token",
		Long:  `Exchange your email and password for a bearer token, stored in the credentials file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			if email == "" {
				fmt.Print("Email: ")
				if _, err := fmt.Scanln(&email); err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}

			if password == "" {
				var err error
				password, err = readPassword("Password (input will be hidden): ")
				if err != nil {
					return err
				}
			}

			cfg, err := config.LoadCliConfig()
			if err != nil {
				return err
			}
			// no token yet, that is what we are here for
			apiClient, err := client.NewClient(cfg.URL, "")
			if err != nil {
				return err
			}

			tokenResp, err := apiClient.Token(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			creds, err := credstore.Load()
			if err != nil {
				return err
			}
			creds.Token = tokenResp.AccessToken
			if err := credstore.Save(creds); err != nil {
				return err
			}

			path, _ := credstore.Path()
			fmt.Printf("Logged in, token written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (prompted if not set)")

	return cmd
}

func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		Long:  ``,
		RunE: func(*cobra.Command, []string) error {
			if err := credstore.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println() // Print a newline after the hidden input
	return string(bytePassword), nil
}
