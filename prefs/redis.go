package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"smartstock/models"
)

const redisKeyPrefix = "prefs:"

// Redis stores each preference set under "prefs:<key>" without expiry.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Load(ctx context.Context, key string) (models.Preferences, error) {
	b, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Preferences{}, ErrNotFound
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load preferences from redis: %w", err)
	}
	return Decode(b)
}

func (r *Redis) Save(ctx context.Context, key string, p models.Preferences) error {
	b, err := Encode(p)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to store preferences in redis: %w", err)
	}
	return nil
}
