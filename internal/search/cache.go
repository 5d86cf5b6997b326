// README: Redis-backed memoization decorator for search clients.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedClient memoizes Search responses in redis, keyed by query hash.
// Cache failures are logged and fall through to the underlying client; a
// broken cache never fails a request. Only successful responses are cached.
type CachedClient struct {
	inner Client
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedClient wraps inner with a redis cache using the given TTL.
func NewCachedClient(inner Client, rdb *redis.Client, ttl time.Duration) *CachedClient {
	return &CachedClient{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "search:q:" + hex.EncodeToString(sum[:])
}

func (c *CachedClient) Search(ctx context.Context, query string) (*Response, error) {
	key := cacheKey(query)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached Response
		if json.Unmarshal(raw, &cached) == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		log.Printf("search cache get: %v", err)
	}

	resp, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(resp); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Printf("search cache set: %v", err)
		}
	}

	return resp, nil
}
