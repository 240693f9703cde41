package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
)

var ErrNoClient = errors.New("redis client not initialized")

// Repository keeps login sessions keyed by token id.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, ErrNoClient
	}
	return client.Get(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}
