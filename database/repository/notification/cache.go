// File: database/repository/notification/cache.go
package notifRepo

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const unreadCountTTL = 5 * time.Minute

// unreadCache keeps per-user unread counts in Redis so the badge endpoint does
// not hit Mongo on every poll. A nil client disables caching entirely.
type unreadCache struct {
	client *redis.Client
}

func (c *unreadCache) key(recipientID string) string {
	return "notifications:unread:" + recipientID
}

// get returns the cached count and whether the key was present.
func (c *unreadCache) get(ctx context.Context, recipientID string) (int64, bool) {
	if c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, c.key(recipientID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (c *unreadCache) set(ctx context.Context, recipientID string, count int64) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, c.key(recipientID), strconv.FormatInt(count, 10), unreadCountTTL)
}

// invalidate drops the cached count after any write that changes it.
func (c *unreadCache) invalidate(ctx context.Context, recipientID string) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, c.key(recipientID))
}
