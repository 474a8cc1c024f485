package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const themeKeyPrefix = "prefs:theme:"

// ThemeRepo persists the light/dark flag per client.
type ThemeRepo interface {
	// Get returns the stored theme, or "" when the client has none.
	Get(ctx context.Context, clientID string) (string, error)
	Set(ctx context.Context, clientID, theme string) error
}

// RedisThemeRepo stores theme flags without expiry; the preference is
// meant to survive between visits.
type RedisThemeRepo struct {
	Client *redis.Client
}

func NewRedisThemeRepo(client *redis.Client) *RedisThemeRepo {
	return &RedisThemeRepo{Client: client}
}

func (r *RedisThemeRepo) Get(ctx context.Context, clientID string) (string, error) {
	theme, err := r.Client.Get(ctx, themeKeyPrefix+clientID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch theme preference: %w", err)
	}
	return theme, nil
}

func (r *RedisThemeRepo) Set(ctx context.Context, clientID, theme string) error {
	if err := r.Client.Set(ctx, themeKeyPrefix+clientID, theme, 0).Err(); err != nil {
		return fmt.Errorf("failed to store theme preference: %w", err)
	}
	return nil
}
