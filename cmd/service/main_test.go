package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Ravi30T/invoice-management-backend/internal/cache"
	"github.com/Ravi30T/invoice-management-backend/internal/config"
	"github.com/Ravi30T/invoice-management-backend/internal/database"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("JWT_SECRET", "secret")
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://localhost/app", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}

	setEnv(t)
	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)

	loadConfig = func() (config.App, error) { return config.App{}, errors.New("config") }
	require.Error(t, run())
	loadConfig = config.Load

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	startServer = func(*echo.Echo, string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	setEnv(t)
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	setEnv(t)
	main()
	require.Equal(t, 1, exitCode)
}
