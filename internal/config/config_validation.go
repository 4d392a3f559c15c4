// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: http or grpc address is required", ErrInvalidServerConfigs)
	}

	if cfg.OAuth.Enabled() {
		if cfg.OAuth.GoogleClientID == "" || cfg.OAuth.GoogleClientSecret == "" || cfg.OAuth.RedirectURL == "" {
			return fmt.Errorf("%w: client id, client secret and redirect url are required", ErrInvalidOAuthConfigs)
		}
	}

	return nil
}
