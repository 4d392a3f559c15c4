// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// legacyEnv holds the unprefixed variable names accepted for compatibility
// with existing deployments. Prefixed variables take precedence.
type legacyEnv struct {
	SecretKey          string   `env:"SECRET_KEY"`
	DatabaseURI        string   `env:"DATABASE_URI"`
	GoogleClientID     string   `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string   `env:"GOOGLE_CLIENT_SECRET"`
	GoogleConfURL      string   `env:"GOOGLE_OAUTH2_CONF_URL"`
	AllowedOrigins     []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	cfg.Auth.TokenSignKey = legacy.SecretKey
	cfg.Storage.DB.DSN = legacy.DatabaseURI
	cfg.OAuth.GoogleClientID = legacy.GoogleClientID
	cfg.OAuth.GoogleClientSecret = legacy.GoogleClientSecret
	cfg.OAuth.GoogleMetadataURL = legacy.GoogleConfURL
	cfg.Server.AllowedOrigins = legacy.AllowedOrigins

	return cfg, nil
}

// dotEnvPath returns the .env file location, overridable with ENV_FILE.
func dotEnvPath() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}

// loadDotEnv loads variables from path without overriding the ones already
// set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
