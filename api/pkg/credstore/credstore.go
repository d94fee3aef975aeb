// Package credstore persists the bearer token and the premium-flow toggle
// between CLI invocations - the only client-side state the platform keeps.
package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirName  = "cvmatch"
	fileName = "credentials.json"
)

type Credentials struct {
	Token   string `json:"token,omitempty"`
	Premium bool   `json:"premium,omitempty"`
}

func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(configDir, dirName, fileName), nil
}

// Load returns empty credentials when no file exists yet, so callers never
// branch on first use.
func Load() (*Credentials, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	bts, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(bts, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}
	return &creds, nil
}

func Save(creds *Credentials) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	bts, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, bts, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored token but keeps the premium preference.
func Clear() error {
	creds, err := Load()
	if err != nil {
		return err
	}
	creds.Token = ""
	return Save(creds)
}
