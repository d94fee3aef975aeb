package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type CliConfig struct {
	URL           string `envconfig:"CVMATCH_URL" default:"http://localhost:8000"`
	Token         string `envconfig:"CVMATCH_TOKEN"`
	TLSSkipVerify bool   `envconfig:"CVMATCH_TLS_SKIP_VERIFY" default:"false"`

	// HTTPRetries caps retryable (5xx) request attempts; everything else
	// fails fast.
	HTTPRetries    int           `envconfig:"CVMATCH_HTTP_RETRIES" default:"3"`
	RequestTimeout time.Duration `envconfig:"CVMATCH_REQUEST_TIMEOUT" default:"30s"`

	// StreamIdleTimeout ends an upload attempt when the backend stops
	// pushing events. Zero disables the guard.
	StreamIdleTimeout time.Duration `envconfig:"CVMATCH_STREAM_IDLE_TIMEOUT" default:"5m"`
}

func LoadCliConfig() (CliConfig, error) {
	_ = godotenv.Load()

	var cfg CliConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return CliConfig{}, err
	}
	return cfg, nil
}
