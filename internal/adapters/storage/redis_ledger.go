package storage

import (
	"context"
	"strings"
	"time"

	"blogapi.app/internal/config"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/timestamp"
	"github.com/go-redis/redis/v8"
	"github.com/jonboulle/clockwork"
)

// RedisLedgerAdapter implements the UniqueEventLedger port with SETNX, so all
// processes sharing the Redis database see one seen-set. Keys never expire.
type RedisLedgerAdapter struct {
	client *redis.Client
	prefix string
	clock  clockwork.Clock
}

// NewRedisLedgerAdapter connects to Redis and verifies the connection
func NewRedisLedgerAdapter(cfg *config.RedisConfig, clock clockwork.Clock) (*RedisLedgerAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisLedgerAdapter{
		client: client,
		prefix: cfg.KeyPrefix,
		clock:  clock,
	}, nil
}

func (r *RedisLedgerAdapter) key(subjectID, actorID string) string {
	return r.prefix + ":" + subjectID + ":" + actorID
}

// Load only checks the connection; the seen-set lives in Redis.
func (r *RedisLedgerAdapter) Load(ctx context.Context, _ int) error {
	return r.Ping(ctx)
}

// TryMark sets the pair's key if absent and reports whether it was set.
// The actor is the last key segment, so it must not contain ':'.
func (r *RedisLedgerAdapter) TryMark(ctx context.Context, subjectID, actorID string) (bool, error) {
	if subjectID == "" || actorID == "" {
		return false, nil
	}
	if strings.Contains(actorID, ":") {
		return false, errors.NewValidationError("actor id cannot contain ':'")
	}

	value := timestamp.FormatISO(r.clock.Now())
	ok, err := r.client.SetNX(ctx, r.key(subjectID, actorID), value, 0).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis setnx operation failed", err)
	}
	return ok, nil
}

// Ping checks if Redis connection is alive
func (r *RedisLedgerAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisLedgerAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

var _ ports.UniqueEventLedger = (*RedisLedgerAdapter)(nil)
