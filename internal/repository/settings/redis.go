package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

const redisKeyPrefix = "skulab:settings:"

type redisRepository struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisRepository stores each client's settings in one hash. A zero ttl
// keeps them forever.
func NewRedisRepository(rdb redis.UniversalClient, ttl time.Duration) *redisRepository {
	return &redisRepository{rdb: rdb, ttl: ttl}
}

func (r *redisRepository) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	const op = "repository.redis.Get"

	v, err := r.rdb.HGet(ctx, redisKeyPrefix+clientID, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSettingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (r *redisRepository) Set(ctx context.Context, clientID, key string, value []byte) error {
	const op = "repository.redis.Set"

	hash := redisKeyPrefix + clientID
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hash, key, value)
		if r.ttl > 0 {
			pipe.Expire(ctx, hash, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
