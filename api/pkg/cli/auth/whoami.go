package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/config"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/credstore"
)

func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the stored token",
		Long:  ``,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadCliConfig()
			if err != nil {
				return err
			}

			token := cfg.Token
			source := "CVMATCH_TOKEN"
			if token == "" {
				creds, err := credstore.Load()
				if err != nil {
					return err
				}
				token = creds.Token
				source = "credentials file"
			}

			if token == "" {
				fmt.Println("Not logged in. Run 'cvmatch login'.")
				return nil
			}

			fmt.Printf("Token source: %s\n", source)
			printClaims(token)
			return nil
		},
	}
}

// printClaims decodes the token locally without verifying the signature -
// the backend owns verification, this is a convenience display. Opaque
// tokens are reported as such.
func printClaims(token string) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		fmt.Println("Token is opaque (not a JWT)")
		return
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		fmt.Println("Token is opaque (not a JWT)")
		return
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Printf("Subject: %s\n", sub)
	}
	if email, ok := claims["email"].(string); ok {
		fmt.Printf("Email: %s\n", email)
	}
	if role, ok := claims["role"].(string); ok {
		fmt.Printf("Role: %s\n", role)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			fmt.Printf("Expired: %s\n", exp.Format(time.RFC3339))
		} else {
			fmt.Printf("Expires: %s\n", exp.Format(time.RFC3339))
		}
	}
}
