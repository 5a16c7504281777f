package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultClientAddress = "http://localhost:3000"
	defaultClientTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the favorites server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the API client.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds the client configuration from defaults, the .env
// file and environment variables. Values set on cmd flags are applied by the
// caller through [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(""); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    defaultClientAddress,
			RequestTimeout: defaultClientTimeout,
		},
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, cfg.validate()
}

// Override replaces the adapter settings with the non-zero values given and
// validates the result.
func (cfg *ClientConfig) Override(address string, timeout time.Duration) error {
	if address != "" {
		cfg.Adapter.HTTPAddress = address
	}
	if timeout != 0 {
		cfg.Adapter.RequestTimeout = timeout
	}

	return cfg.validate()
}
