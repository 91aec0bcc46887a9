package charmsnapshot

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	redisclient "github.com/KirkDiggler/charm-tracker/internal/redis"
)

const snapshotKeyPrefix = "charm_snapshot:"

// RedisConfig contains configuration for the Redis snapshot repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("snapshot %s not found", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot %s", input.Key)
	}

	charms, err := decode(input.Key, result)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Charms: charms}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	data, err := encode(input.Charms)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, GetKey(input.Key), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", input.Key)
	}

	return &SaveOutput{Bytes: len(data)}, nil
}

// GetKey returns the Redis key a snapshot is stored under
// Exposed for testing purposes
func GetKey(key string) string {
	return snapshotKeyPrefix + key
}
