package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const metaKey = "products:meta"

type RedisService struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisService(rdb *redis.Client, prefix string, ttl time.Duration) *RedisService {
	return &RedisService{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// Ping verifies the Redis connection.
func (s *RedisService) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// GetJSON loads key into dest. It reports false on a cache miss.
func (s *RedisService) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key with the service TTL.
func (s *RedisService) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete removes key from the cache.
func (s *RedisService) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// MetaCache caches the product brand/category listing.
type MetaCache struct {
	svc *RedisService
}

func NewMetaCache(svc *RedisService) *MetaCache {
	return &MetaCache{svc: svc}
}

func (c *MetaCache) Get(ctx context.Context, dest any) (bool, error) {
	return c.svc.GetJSON(ctx, metaKey, dest)
}

func (c *MetaCache) Set(ctx context.Context, value any) error {
	return c.svc.SetJSON(ctx, metaKey, value)
}

func (c *MetaCache) Invalidate(ctx context.Context) error {
	return c.svc.Delete(ctx, metaKey)
}
