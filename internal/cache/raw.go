package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// rawEntry wraps a cached upstream payload with its own expiry. The expiry is
// checked at read time in addition to the Redis TTL, so an entry past its
// expiry is treated as absent even if Redis has not evicted it yet.
type rawEntry struct {
	Payload   json.RawMessage `json:"payload"`
	CachedAt  time.Time       `json:"cached_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Stats tracks raw cache performance counters.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
	mu     sync.Mutex
}

// RawCache stores raw provider responses in Redis, keyed by
// (source, ticker, endpoint). A write fully replaces the previous entry and
// resets its expiry. Cache failures are never fatal: reads degrade to a miss
// and writes are dropped.
type RawCache struct {
	redis  *redis.Client
	stats  *Stats
	prefix string
	// now is injected for expiry tests.
	now func() time.Time
}

// NewRawCache creates a Redis-backed raw-response cache.
func NewRawCache(redisClient *redis.Client) *RawCache {
	return &RawCache{
		redis:  redisClient,
		stats:  &Stats{},
		prefix: "raw:",
		now:    time.Now,
	}
}

func (c *RawCache) key(source, ticker, endpoint string) string {
	return c.prefix + source + ":" + ticker + ":" + endpoint
}

// Get returns the cached payload for (source, ticker, endpoint), or false on
// a miss. Expired entries count as misses.
func (c *RawCache) Get(ctx context.Context, source, ticker, endpoint string) ([]byte, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	cacheKey := c.key(source, ticker, endpoint)

	data, err := c.redis.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		c.miss()
		return nil, false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", cacheKey).Warn("Redis error reading raw cache")
		c.miss()
		return nil, false
	}

	var entry rawEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		logrus.WithError(err).WithField("key", cacheKey).Warn("Error deserializing raw cache entry")
		c.miss()
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.miss()
		return nil, false
	}

	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()

	return entry.Payload, true
}

// Set stores a payload with the given TTL, replacing any previous entry.
func (c *RawCache) Set(ctx context.Context, source, ticker, endpoint string, payload []byte, ttl time.Duration) {
	if c == nil || c.redis == nil {
		return
	}

	cacheKey := c.key(source, ticker, endpoint)

	now := c.now()
	entry := rawEntry{
		Payload:   payload,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logrus.WithError(err).WithField("key", cacheKey).Warn("Error serializing raw cache entry")
		return
	}

	if err := c.redis.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", cacheKey).Warn("Redis error writing raw cache")
		return
	}

	c.stats.mu.Lock()
	c.stats.Sets++
	c.stats.mu.Unlock()
}

func (c *RawCache) miss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

// GetStats returns a copy of the current counters.
func (c *RawCache) GetStats() Stats {
	c.stats.mu.Lock()
	defer c.stats.mu.Unlock()
	return Stats{
		Hits:   c.stats.Hits,
		Misses: c.stats.Misses,
		Sets:   c.stats.Sets,
	}
}
