package credstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadWithoutFile(t *testing.T) {
	setupConfigDir(t)

	creds, err := Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
	assert.False(t, creds.Premium)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setupConfigDir(t)

	require.NoError(t, Save(&Credentials{Token: "tok_123", Premium: true}))

	creds, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tok_123", creds.Token)
	assert.True(t, creds.Premium)

	path, err := Path()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClearKeepsPremiumPreference(t *testing.T) {
	setupConfigDir(t)

	require.NoError(t, Save(&Credentials{Token: "tok_123", Premium: true}))
	require.NoError(t, Clear())

	creds, err := Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
	assert.True(t, creds.Premium)
}
