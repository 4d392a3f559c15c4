package config

import (
	"strings"
	"time"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	defaultTokenIssuer        = "intelli-scan"
	defaultTokenDuration      = time.Hour
	defaultLogLevel           = "debug"
	defaultStateTTL           = 10 * time.Minute
	defaultStateSweepInterval = time.Minute
	defaultRedisTimeout       = 5 * time.Second
	defaultRedisAttempts      = 3
	defaultRedisRetryInterval = time.Second
	defaultGoogleMetadataURL  = "https://accounts.google.com/.well-known/openid-configuration"
)

var defaultOAuthScopes = []string{"openid", "email", "profile"}

// applyDefaults fills unset fields of the merged config.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	if len(cfg.OAuth.Scopes) == 0 {
		cfg.OAuth.Scopes = append([]string(nil), defaultOAuthScopes...)
	}
	if cfg.OAuth.StateTTL == 0 {
		cfg.OAuth.StateTTL = defaultStateTTL
	}
	if cfg.OAuth.Enabled() && cfg.OAuth.GoogleMetadataURL == "" {
		cfg.OAuth.GoogleMetadataURL = defaultGoogleMetadataURL
	}

	cfg.Storage.DB.DSN = normalizeDSN(cfg.Storage.DB.DSN)
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = driverFromDSN(cfg.Storage.DB.DSN)
	}

	if cfg.Storage.Redis.ConnectTimeout == 0 {
		cfg.Storage.Redis.ConnectTimeout = defaultRedisTimeout
	}
	if cfg.Storage.Redis.RetryAttempts == 0 {
		cfg.Storage.Redis.RetryAttempts = defaultRedisAttempts
	}
	if cfg.Storage.Redis.RetryInterval == 0 {
		cfg.Storage.Redis.RetryInterval = defaultRedisRetryInterval
	}

	if cfg.Workers.StateSweepInterval == 0 {
		cfg.Workers.StateSweepInterval = defaultStateSweepInterval
	}
}

// normalizeDSN rewrites the legacy "postgres://" scheme to "postgresql://".
func normalizeDSN(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "postgres://"); ok {
		return "postgresql://" + rest
	}
	return dsn
}

func driverFromDSN(dsn string) string {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return DriverPostgres
	case strings.HasPrefix(dsn, "file:"),
		strings.HasPrefix(dsn, "sqlite://"),
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"),
		dsn == ":memory:":
		return DriverSQLite
	default:
		return DriverPostgres
	}
}
