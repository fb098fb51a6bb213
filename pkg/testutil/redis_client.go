package testutil

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient implements xredis.Client with overridable methods. A nil
// func field behaves as a no-op success.
type MockRedisClient struct {
	ExistFunc               func(ctx context.Context, key string) (bool, error)
	DelFunc                 func(ctx context.Context, keys ...string) error
	ZAddFunc                func(ctx context.Context, key string, z redis.Z) error
	ZIncrByFunc             func(ctx context.Context, key string, incr int64, member string) error
	ZRevRangeWithScoresFunc func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error)
	ZRevRankFunc            func(ctx context.Context, key string, member string) (uint64, error)
}

func (c *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if c.ExistFunc != nil {
		return c.ExistFunc(ctx, key)
	}

	return false, nil
}

func (c *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	if c.DelFunc != nil {
		return c.DelFunc(ctx, keys...)
	}

	return nil
}

func (c *MockRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	if c.ZAddFunc != nil {
		return c.ZAddFunc(ctx, key, z)
	}

	return nil
}

func (c *MockRedisClient) ZIncrBy(ctx context.Context, key string, incr int64, member string) error {
	if c.ZIncrByFunc != nil {
		return c.ZIncrByFunc(ctx, key, incr, member)
	}

	return nil
}

func (c *MockRedisClient) ZRevRangeWithScores(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
	if c.ZRevRangeWithScoresFunc != nil {
		return c.ZRevRangeWithScoresFunc(ctx, key, offset, limit)
	}

	return nil, nil
}

func (c *MockRedisClient) ZRevRank(ctx context.Context, key string, member string) (uint64, error) {
	if c.ZRevRankFunc != nil {
		return c.ZRevRankFunc(ctx, key, member)
	}

	return 0, nil
}
