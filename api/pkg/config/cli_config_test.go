package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCliConfigDefaults(t *testing.T) {
	cfg, err := LoadCliConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.URL)
	assert.Equal(t, 3, cfg.HTTPRetries)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.StreamIdleTimeout)
}

func TestLoadCliConfigFromEnv(t *testing.T) {
	t.Setenv("CVMATCH_URL", "https://api.cvmatch.example.com")
	t.Setenv("CVMATCH_TOKEN", "tok_env")
	t.Setenv("CVMATCH_STREAM_IDLE_TIMEOUT", "90s")

	cfg, err := LoadCliConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.cvmatch.example.com", cfg.URL)
	assert.Equal(t, "tok_env", cfg.Token)
	assert.Equal(t, 90*time.Second, cfg.StreamIdleTimeout)
}
