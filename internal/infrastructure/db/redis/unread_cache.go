package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadTTL = 10 * time.Minute

// UnreadCache caches per-user unread notification counts backing the badge
// counter. Key format: unread:<user_id>
type UnreadCache struct {
	client *redis.Client
}

// NewUnreadCache creates an UnreadCache wrapping the given Redis client.
func NewUnreadCache(client *redis.Client) *UnreadCache {
	return &UnreadCache{client: client}
}

// Get returns the cached count, or -1 when the count is not cached.
func (c *UnreadCache) Get(ctx context.Context, userID string) (int64, error) {
	count, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return 0, fmt.Errorf("unread cache get: %w", err)
	}
	return count, nil
}

// Set stores the count (expires after unreadTTL).
func (c *UnreadCache) Set(ctx context.Context, userID string, count int64) error {
	return c.client.Set(ctx, c.key(userID), count, unreadTTL).Err()
}

// Invalidate drops the cached count after a write that changed it.
func (c *UnreadCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *UnreadCache) key(userID string) string {
	return "unread:" + userID
}
