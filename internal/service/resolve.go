// File: internal/service/resolve.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ravi30T/invoice-management-backend/internal/cache"
	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/model"
	"github.com/Ravi30T/invoice-management-backend/internal/store"
	"github.com/Ravi30T/invoice-management-backend/internal/worker"
)

// userCacheTTL bounds staleness of cached user records. Users are immutable
// after registration, so a stale hit can only ever be a missing one.
const userCacheTTL = 10 * time.Minute

// 測試替換點
var (
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	getUserByUserID = store.GetUserByUserID
)

func userCacheKey(userID string) string { return "user:" + userID }

// ResolveUser returns the acting user for a verified token claim. The cache
// is consulted first; on a miss the credential store is authoritative and
// the record is cached for the next request.
func ResolveUser(ctx context.Context, db database.DB, rdb cache.Cache, wp worker.Pool, userID string) (*model.User, error) {
	if data, err := rdb.Get(ctx, userCacheKey(userID)).Bytes(); err == nil {
		u := &model.User{}
		if err := jsonUnmarshal(data, u); err == nil {
			return u, nil
		}
	}

	u, err := getUserByUserID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	CacheUser(rdb, wp, u)
	return u, nil
}

// CacheUser stores a user record for later ResolveUser hits. The redis write
// runs on the worker pool so it never sits on the request path; the cached
// JSON omits the password hash via the model's tags.
func CacheUser(rdb cache.Cache, wp worker.Pool, u *model.User) {
	data, err := jsonMarshal(u)
	if err != nil {
		return
	}
	key := userCacheKey(u.UserID)
	wp.Submit(func() {
		rdb.Set(context.Background(), key, data, userCacheTTL)
	})
}
