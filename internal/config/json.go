package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Argon2        struct {
			Memory     uint32 `json:"memory"`
			Iterations uint32 `json:"iterations"`
			Threads    uint8  `json:"threads"`
		} `json:"argon2,omitempty"`
	} `json:"auth,omitempty"`

	OAuth struct {
		GoogleClientID     string   `json:"google_client_id"`
		GoogleClientSecret string   `json:"google_client_secret"`
		GoogleMetadataURL  string   `json:"google_metadata_url"`
		RedirectURL        string   `json:"redirect_url"`
		Scopes             []string `json:"scopes"`
		StateTTL           Duration `json:"state_ttl"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL            string   `json:"url"`
			ConnectTimeout Duration `json:"connect_timeout"`
			RetryAttempts  int      `json:"retry_attempts"`
			RetryInterval  Duration `json:"retry_interval"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Workers struct {
		StateSweepInterval Duration `json:"state_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			Argon2: Argon2{
				Memory:     jsonCfg.Auth.Argon2.Memory,
				Iterations: jsonCfg.Auth.Argon2.Iterations,
				Threads:    jsonCfg.Auth.Argon2.Threads,
			},
		},
		OAuth: OAuth{
			GoogleClientID:     jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret: jsonCfg.OAuth.GoogleClientSecret,
			GoogleMetadataURL:  jsonCfg.OAuth.GoogleMetadataURL,
			RedirectURL:        jsonCfg.OAuth.RedirectURL,
			Scopes:             jsonCfg.OAuth.Scopes,
			StateTTL:           time.Duration(jsonCfg.OAuth.StateTTL),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL:            jsonCfg.Storage.Redis.URL,
				ConnectTimeout: time.Duration(jsonCfg.Storage.Redis.ConnectTimeout),
				RetryAttempts:  jsonCfg.Storage.Redis.RetryAttempts,
				RetryInterval:  time.Duration(jsonCfg.Storage.Redis.RetryInterval),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Workers: Workers{
			StateSweepInterval: time.Duration(jsonCfg.Workers.StateSweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
