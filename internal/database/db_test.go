package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	t.Run("unset fns panic", func(t *testing.T) {
		db := &FakeDB{}
		require.Panics(t, func() { db.Exec(context.Background(), "insert") })
		require.Panics(t, func() { db.Query(context.Background(), "select") })
		require.Panics(t, func() { db.QueryRow(context.Background(), "select") })
		require.Panics(t, func() { db.Ping(context.Background()) })
		db.Close() // Close without CloseFn is a no-op
	})

	t.Run("fns receive the statement and args", func(t *testing.T) {
		db := &FakeDB{
			ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, "DELETE FROM invoices", sql)
				require.Equal(t, []any{"inv-1"}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Equal(t, "SELECT * FROM invoices", sql)
				return emptyRows{}, nil
			},
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				require.Equal(t, []any{"a@x.com"}, args)
				return emptyRows{}
			},
		}

		tag, err := db.Exec(context.Background(), "DELETE FROM invoices", "inv-1")
		require.NoError(t, err)
		require.EqualValues(t, 1, tag.RowsAffected())

		rows, err := db.Query(context.Background(), "SELECT * FROM invoices")
		require.NoError(t, err)
		require.False(t, rows.Next())

		require.NoError(t, db.QueryRow(context.Background(), "SELECT 1", "a@x.com").Scan())
	})

	t.Run("errors and lifecycle fns propagate", func(t *testing.T) {
		pinged := false
		closed := false
		db := &FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
			PingFn:  func(context.Context) error { pinged = true; return nil },
			CloseFn: func() { closed = true },
		}

		_, err := db.Exec(context.Background(), "sql")
		require.EqualError(t, err, "exec")
		require.NoError(t, db.Ping(context.Background()))
		db.Close()
		require.True(t, pinged)
		require.True(t, closed)
	})
}
