package notifRepo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestCache(t *testing.T) (*unreadCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &unreadCache{client: client}, mr
}

func TestUnreadCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok := cache.get(ctx, "u1"); ok {
		t.Fatal("expected cache miss")
	}

	cache.set(ctx, "u1", 7)
	count, ok := cache.get(ctx, "u1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if count != 7 {
		t.Errorf("count = %d, want 7", count)
	}
}

func TestUnreadCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.set(ctx, "u1", 3)
	cache.invalidate(ctx, "u1")

	if _, ok := cache.get(ctx, "u1"); ok {
		t.Fatal("expected miss after invalidate")
	}
}

func TestUnreadCachePerUserKeys(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.set(ctx, "u1", 1)
	cache.set(ctx, "u2", 2)
	cache.invalidate(ctx, "u1")

	if _, ok := cache.get(ctx, "u1"); ok {
		t.Error("u1 should be invalidated")
	}
	if count, ok := cache.get(ctx, "u2"); !ok || count != 2 {
		t.Errorf("u2 count = %d (hit=%v), want 2", count, ok)
	}
}

func TestUnreadCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.set(ctx, "u1", 5)
	mr.FastForward(unreadCountTTL * 2)

	if _, ok := cache.get(ctx, "u1"); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestUnreadCacheNilClient(t *testing.T) {
	cache := &unreadCache{}
	ctx := context.Background()

	// All operations must be safe no-ops without Redis.
	cache.set(ctx, "u1", 1)
	cache.invalidate(ctx, "u1")
	if _, ok := cache.get(ctx, "u1"); ok {
		t.Fatal("nil client must always miss")
	}
}
