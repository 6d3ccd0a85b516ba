package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"retail-crud/internal/retail"
)

const (
	LISTING_CACHE_PREFIX = "retail:list:"
	EVENT_CHANNEL_PREFIX = "retail:events:"
	EVENT_CHANNEL_ALL    = "retail:events:all"
)

// ListingCache keeps rendered listing rows in Redis. A nil *ListingCache is
// valid and caches nothing.
type ListingCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewListingCache(redisClient *redis.Client, ttl time.Duration) *ListingCache {
	if redisClient == nil || ttl <= 0 {
		return nil
	}
	return &ListingCache{
		redis: redisClient,
		ttl:   ttl,
	}
}

func listingKey(resource string) string {
	return LISTING_CACHE_PREFIX + resource
}

func (c *ListingCache) Get(ctx context.Context, resource string) ([]retail.Row, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.redis.Get(ctx, listingKey(resource)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error on GET %s: %v. Falling back to DB.", resource, err)
		}
		return nil, false
	}

	// UseNumber keeps ids like 123456789 from turning into floats.
	dec := json.NewDecoder(bytes.NewReader(val))
	dec.UseNumber()
	var rows []retail.Row
	if err := dec.Decode(&rows); err != nil {
		log.Printf("Discarding unreadable cache entry %s: %v", resource, err)
		return nil, false
	}
	return rows, true
}

func (c *ListingCache) Set(ctx context.Context, resource string, rows []retail.Row) {
	if c == nil {
		return
	}

	jsonData, err := json.Marshal(rows)
	if err != nil {
		log.Printf("Failed to encode cache entry %s: %v", resource, err)
		return
	}
	if err := c.redis.Set(ctx, listingKey(resource), jsonData, c.ttl).Err(); err != nil {
		log.Printf("Failed to set cache for key %s: %v", listingKey(resource), err)
	}
}

func (c *ListingCache) Invalidate(ctx context.Context, resources ...string) {
	if c == nil || len(resources) == 0 {
		return
	}

	keys := make([]string, 0, len(resources))
	for _, r := range resources {
		keys = append(keys, listingKey(r))
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate %v: %v", keys, err)
	}
}

type MutationEvent struct {
	EventType    string    `json:"event_type"`
	Resource     string    `json:"resource"`
	RowsAffected int64     `json:"rows_affected"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publish announces a mutation on the per-resource channel and on the
// catch-all channel.
func (c *ListingCache) Publish(ctx context.Context, event MutationEvent) error {
	if c == nil {
		return nil
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := c.redis.Publish(ctx, EVENT_CHANNEL_PREFIX+event.Resource, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := c.redis.Publish(ctx, EVENT_CHANNEL_ALL, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish to all channel: %w", err)
	}
	return nil
}
