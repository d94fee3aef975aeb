package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func NewRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  `Register a candidate, hirer or admin account. Run 'cvmatch login' afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			role, _ := cmd.Flags().GetString("role")

			accountRole, err := types.ValidateAccountRole(role, true)
			if err != nil {
				return err
			}

			if email == "" {
				fmt.Print("Email: ")
				if _, err := fmt.Scanln(&email); err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}

			password, err := readPassword("Password (input will be hidden): ")
			if err != nil {
				return err
			}

			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			registerResp, err := apiClient.Register(cmd.Context(), &types.RegisterRequest{
				Email:    email,
				Password: password,
				Role:     accountRole,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Printf("Registered %s as %s. Run 'cvmatch login' to get a token.\n",
				registerResp.Email, registerResp.Role)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("role", string(types.AccountRoleCandidate), "Account role: candidate, hirer or admin")

	return cmd
}
