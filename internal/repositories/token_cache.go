package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
)

// TokenCacheRepository caches token -> user id lookups in Redis so that
// authentication does not hit Postgres on every request. The auth_tokens
// table remains the source of truth; entries expire after the configured
// TTL and are removed eagerly on logout.
type TokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached tokens
}

// NewTokenCacheRepository creates a new repository instance with the given TTL.
func NewTokenCacheRepository(client *redis.Client, expiration time.Duration) *TokenCacheRepository {
	return &TokenCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached user id for a token.
func (r *TokenCacheRepository) Get(ctx context.Context, token string) (uuid.UUID, error) {
	key := "auth_token:" + token

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return uuid.Nil, fmt.Errorf("token not found in cache")
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Infow(
			"value", val,
			"error", err,
		)
		return uuid.Nil, err
	}

	return userID, nil
}

// Set caches a token -> user id mapping with expiration.
func (r *TokenCacheRepository) Set(ctx context.Context, token string, userID uuid.UUID) error {
	key := "auth_token:" + token
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow(
		"user_id", userID,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete removes a cached token after logout.
func (r *TokenCacheRepository) Delete(ctx context.Context, token string) error {
	key := "auth_token:" + token
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"result", "ok",
		"error", err,
	)

	return err
}
