// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// The platform-style variables DATABASE_URL and PORT are honoured when the
// prefixed variables are not set.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv("DATABASE_URL")
	}
	if port := os.Getenv("PORT"); cfg.Server.HTTPAddress == "" && port != "" {
		cfg.Server.HTTPAddress = net.JoinHostPort("0.0.0.0", port)
	}

	return nil
}

// loadDotEnv loads variables from a dotenv file into the process
// environment without overriding variables that are already set.
// An empty path means ".env"; a missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = defaultDotEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}
