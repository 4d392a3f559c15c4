package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages bundles every persistence backend the services depend on.
type Storages struct {
	UserRepository UserRepository
	StateStore     StateStore

	db    *DB
	redis *redis.Client
}

// NewStorages connects the database, applies migrations and selects the
// OAuth state store: Redis when a URL is configured, memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}

	if cfg.Redis.URL != "" {
		client, err := ConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error connecting redis: %w", err)
		}
		storages.redis = client
		storages.StateStore = NewRedisStateStore(client)
	} else {
		log.Info().Str("func", "NewStorages").Msg("using in-memory oauth state store")
		storages.StateStore = NewMemoryStateStore()
	}

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = errors.Join(err, s.redis.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
