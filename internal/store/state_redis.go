package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "intelli-scan:oauth-state:"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready")
)

// redisStateStore keeps OAuth states in Redis so that any instance can
// complete a callback. Expiry is native (SET NX EX).
type redisStateStore struct {
	client redis.UniversalClient
}

// NewRedisStateStore returns a [StateStore] backed by client.
func NewRedisStateStore(client redis.UniversalClient) StateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	ok, err := s.client.SetNX(ctx, stateKeyPrefix+state, 1, ttl).Result()
	if err != nil {
		return fmt.Errorf("error saving oauth state: %w", err)
	}
	if !ok {
		return ErrStateAlreadyExists
	}
	return nil
}

func (s *redisStateStore) ConsumeState(ctx context.Context, state string) error {
	err := s.client.GetDel(ctx, stateKeyPrefix+state).Err()
	if errors.Is(err, redis.Nil) {
		return ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("error consuming oauth state: %w", err)
	}
	return nil
}

func (s *redisStateStore) PurgeExpired(ctx context.Context) (int, error) {
	return 0, nil
}

// ConnectRedis establishes a connection to a Redis server. It attempts to
// connect cfg.RetryAttempts times with cfg.RetryInterval between attempts,
// bounded by cfg.ConnectTimeout overall.
func ConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for attempt := range attempts {
		client := redis.NewClient(opts)

		pingErr := client.Ping(ctx).Err()
		if pingErr == nil {
			log.Info().Str("func", "ConnectRedis").Msg("connected to redis successfully")
			return client, nil
		}

		_ = client.Close()
		log.Warn().Err(pingErr).Str("func", "ConnectRedis").Int("attempt", attempt+1).Msg("redis is not ready")

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
