package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"galaxydental/models"
)

// ErrSessionNotFound is returned when a booking session does not exist
// or its TTL has expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

const sessionKeyPrefix = "booking:session:"

// SessionRepo stores booking wizard sessions.
type SessionRepo interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionRepo keeps sessions as JSON blobs with a TTL. Every Save
// refreshes the TTL, so an active wizard never expires mid-flow.
type RedisSessionRepo struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) *RedisSessionRepo {
	return &RedisSessionRepo{Client: client, TTL: ttl}
}

func (r *RedisSessionRepo) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := r.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepo) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.Client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
