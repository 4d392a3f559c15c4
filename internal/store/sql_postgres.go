package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
)

// NewConnectPostgres opens a pgx-backed pool and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	pool, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening postgres pool")
		return nil, fmt.Errorf("error opening postgres pool: %w", err)
	}

	pool.SetMaxOpenConns(postgresMaxOpenConns)
	pool.SetMaxIdleConns(postgresMaxIdleConns)

	if err = pool.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		_ = pool.Close()
		return nil, fmt.Errorf("error pinging postgres: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("postgres connection established")

	return &DB{
		DB:                 pool,
		driver:             config.DriverPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

// postgresError returns the SQLSTATE carried by err, or "" for non-postgres
// errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isPostgresUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
