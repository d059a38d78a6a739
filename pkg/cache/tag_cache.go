package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// TagCacheTTL is the time-to-live for cached tag assignments.
	TagCacheTTL = 24 * time.Hour

	tagCacheKeyPrefix = "rfidtag"
)

// CachedTag is the denormalized tag read model stored in Redis, keyed by the
// item the tag covers. Warmed by the worker from rfid.tag.assigned events and
// read by the supply listing to decorate items with their tag.
type CachedTag struct {
	TagID       string    `json:"tag_id"`
	ItemID      string    `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Status      string    `json:"status"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TagCache provides structured read/write operations for tag cache entries.
// Key format: "rfidtag:{itemID}". One entry per item — the reconciler assigns
// at most one tag per item, so later assignments for the same item overwrite.
type TagCache struct {
	client *RedisClient
}

// NewTagCache creates a new TagCache backed by the given RedisClient.
func NewTagCache(r *RedisClient) *TagCache {
	return &TagCache{client: r}
}

// Get retrieves the cached tag for an item.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *TagCache) Get(ctx context.Context, itemID string) (*CachedTag, error) {
	key := c.key(itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	generatedAt, err := time.Parse(time.RFC3339Nano, vals["generated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse generated_at: %w", err)
	}

	return &CachedTag{
		TagID:       vals["tag_id"],
		ItemID:      vals["item_id"],
		ItemName:    vals["item_name"],
		Status:      vals["status"],
		GeneratedAt: generatedAt,
	}, nil
}

// Set writes a cached tag as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *TagCache) Set(ctx context.Context, tag *CachedTag) error {
	key := c.key(tag.ItemID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"tag_id", tag.TagID,
		"item_id", tag.ItemID,
		"item_name", tag.ItemName,
		"status", tag.Status,
		"generated_at", tag.GeneratedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, TagCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the cached tag for an item.
func (c *TagCache) Delete(ctx context.Context, itemID string) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "rfidtag:{itemID}"
func (c *TagCache) key(itemID string) string {
	return fmt.Sprintf("%s:%s", tagCacheKeyPrefix, itemID)
}
