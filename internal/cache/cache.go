// Package cache wraps the redis client behind a small interface so the
// user resolver can be tested without a live Redis.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 是使用者快取依賴的最小 redis 介面
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Close() error
}

// FakeCache 依欄位提供假實作，未設定的 Get/Set 被呼叫時直接 panic。
// Close 未設定時視為 no-op，方便只關心讀寫的測試。
type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	CloseFn func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn == nil {
		panic("FakeCache: unexpected Get")
	}
	return f.GetFn(ctx, key)
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.SetFn == nil {
		panic("FakeCache: unexpected Set")
	}
	return f.SetFn(ctx, key, value, ttl)
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
