package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	maxRetryAttempts = 3
	retryBaseDelay   = 50 * time.Millisecond
)

// DB is a database/sql pool bound to one SQL dialect.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// builder returns a squirrel statement builder with the placeholder format
// of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// isUniqueViolation reports whether err is a unique constraint failure.
func (db *DB) isUniqueViolation(err error) bool {
	if db.driver == config.DriverSQLite {
		return isSQLiteUniqueViolation(err)
	}
	return isPostgresUniqueViolation(err)
}

// withRetry runs op until it succeeds, fails with a non-retryable error,
// or the attempts are exhausted.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBaseDelay):
		}
	}

	return err
}
