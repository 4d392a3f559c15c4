package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port flag value. An empty host listens on all
// interfaces; a named host other than localhost is rejected.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command line into a partial configuration.
//
// Flags:
//
//	-a                   HTTP address [host]:port
//	-grpc-address        gRPC address [host]:port
//	-d                   database DSN
//	-db-driver           pgx or sqlite3
//	-redis-url           redis URL for the OAuth state store
//	-c, -config          JSON config file
//	-token-sign-key      session token signing key
//	-token-issuer        session token issuer
//	-token-duration      session token lifetime, e.g. 1h
//	-request-timeout     per-request timeout, e.g. 30s
//	-allowed-origins     comma separated CORS origins
//	-google-client-id    Google OAuth client id
//	-google-client-secret Google OAuth client secret
//	-oauth-redirect-url  Google OAuth callback URL
//	-state-sweep-interval how often expired OAuth states are purged
//	-log-level           zerolog level name
func ParseFlags() *StructuredConfig {
	var httpAddress, grpcAddress NetAddress
	var allowedOrigins string
	cfg := &StructuredConfig{}

	flag.Var(&httpAddress, "a", "HTTP address [host]:port")
	flag.Var(&grpcAddress, "grpc-address", "gRPC address [host]:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	flag.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&cfg.Storage.Redis.URL, "redis-url", "", "Redis URL for the OAuth state store")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	flag.StringVar(&cfg.OAuth.GoogleClientID, "google-client-id", "", "Google OAuth client id")
	flag.StringVar(&cfg.OAuth.GoogleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	flag.StringVar(&cfg.OAuth.RedirectURL, "oauth-redirect-url", "", "Google OAuth callback URL")
	flag.DurationVar(&cfg.Workers.StateSweepInterval, "state-sweep-interval", 0, "OAuth state sweep interval (e.g., 1m)")
	flag.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (e.g., debug, info)")

	flag.Parse()

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Server.AllowedOrigins = splitList(allowedOrigins)

	return cfg
}

func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns host:port, or "" when the address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portString, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
