// Package database wraps the pgx connection pool behind a small interface
// so stores and handlers can be tested without a live Postgres.
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store 層依賴的最小 pgx 介面
// 正式環境由 *pgxpool.Pool 實作，測試時以 FakeDB 替換
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

// FakeDB 依欄位提供假實作，未設定的方法被呼叫時直接 panic，
// 讓測試早早暴露未預期的資料庫存取。
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("FakeDB: unexpected Exec")
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: unexpected Query")
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("FakeDB: unexpected QueryRow")
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
