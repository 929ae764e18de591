package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Ravi30T/invoice-management-backend/internal/cache"
	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/model"
	"github.com/Ravi30T/invoice-management-backend/internal/store"
	"github.com/Ravi30T/invoice-management-backend/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestResolveUserCacheHit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	cached, _ := json.Marshal(model.User{UserID: "uid-1", Name: "alice"})
	rdb := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, "user:uid-1", key)
			return redis.NewStringResult(string(cached), nil)
		},
	}
	getUserByUserID = func(context.Context, database.DB, string) (*model.User, error) {
		t.Fatal("store must not be consulted on a cache hit")
		return nil, nil
	}

	u, err := ResolveUser(context.Background(), &database.FakeDB{}, rdb, nil, "uid-1")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Name)
}

func TestResolveUserCacheMiss(t *testing.T) {
	t.Cleanup(restoreGlobals)
	wp := worker.NewPool(1)

	setKeys := make(chan string, 1)
	rdb := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, userCacheTTL, ttl)
			setKeys <- key
			return redis.NewStatusResult("OK", nil)
		},
	}
	getUserByUserID = func(_ context.Context, _ database.DB, id string) (*model.User, error) {
		require.Equal(t, "uid-2", id)
		return &model.User{UserID: "uid-2", Name: "bob"}, nil
	}

	u, err := ResolveUser(context.Background(), &database.FakeDB{}, rdb, wp, "uid-2")
	require.NoError(t, err)
	require.Equal(t, "bob", u.Name)

	wp.Stop() // drain the async cache write
	require.Equal(t, "user:uid-2", <-setKeys)
}

func TestResolveUserUnknown(t *testing.T) {
	t.Cleanup(restoreGlobals)
	rdb := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
	}
	getUserByUserID = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, store.ErrNotFound
	}
	_, err := ResolveUser(context.Background(), &database.FakeDB{}, rdb, nil, "uid-404")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestResolveUserCorruptCacheEntry(t *testing.T) {
	t.Cleanup(restoreGlobals)
	wp := worker.NewPool(1)
	rdb := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("{not json", nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
	}
	called := false
	getUserByUserID = func(context.Context, database.DB, string) (*model.User, error) {
		called = true
		return &model.User{UserID: "uid-3"}, nil
	}
	_, err := ResolveUser(context.Background(), &database.FakeDB{}, rdb, wp, "uid-3")
	wp.Stop()
	require.NoError(t, err)
	require.True(t, called)
}

func TestCacheUserMarshalError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("json") }
	// must not submit anything; a nil pool would panic if it did
	CacheUser(&cache.FakeCache{}, nil, &model.User{UserID: "uid-4"})
}
