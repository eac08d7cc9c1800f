// Package cache implements the list cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expenseflow/backend/internal/application/adapter"
)

// redisListCache implements adapter.ListCache on a Redis client. Keys are
// cache:<collection>:<user-id> holding the JSON-encoded list.
type redisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListCache creates a new Redis-backed list cache.
func NewRedisListCache(client *redis.Client, ttl time.Duration) adapter.ListCache {
	return &redisListCache{
		client: client,
		ttl:    ttl,
	}
}

func key(collection adapter.Collection, userID uuid.UUID) string {
	return fmt.Sprintf("cache:%s:%s", collection, userID)
}

// Get unmarshals the cached list for (collection, user) into dest. A missing
// key is a miss, not an error.
func (c *redisListCache) Get(ctx context.Context, collection adapter.Collection, userID uuid.UUID, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key(collection, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt value is as good as a miss; drop it so the next Set heals it.
		c.client.Del(ctx, key(collection, userID))
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores the JSON-encoded list for (collection, user) with the configured TTL.
func (c *redisListCache) Set(ctx context.Context, collection adapter.Collection, userID uuid.UUID, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key(collection, userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list for (collection, user).
func (c *redisListCache) Invalidate(ctx context.Context, collection adapter.Collection, userID uuid.UUID) error {
	if err := c.client.Del(ctx, key(collection, userID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached collection for the user. Called at
// session end so no list is reused across identities.
func (c *redisListCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	keys := []string{
		key(adapter.CollectionExpenses, userID),
		key(adapter.CollectionBudgets, userID),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate user: %w", err)
	}
	return nil
}
