package dumplite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dumplite/dumplite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoadScript(t *testing.T) {
	ctx := context.Background()

	t.Run("loads a multi-statement script", func(t *testing.T) {
		db := openMemoryDB(t)
		script := `
          CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT);
          -- seed data ; semicolon in comment is fine
          INSERT INTO people VALUES (1, 'Ada');
          INSERT INTO people VALUES (2, 'Grace; the second');
        `
		res, err := dumplite.LoadScript(ctx, db, script, zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, 3, res.Executed)
		require.Equal(t, 0, res.Failed)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM people").Scan(&count))
		require.Equal(t, 2, count)

		var name string
		require.NoError(t, db.QueryRow("SELECT name FROM people WHERE id = 2").Scan(&name))
		require.Equal(t, "Grace; the second", name)
	})

	t.Run("a failing statement does not abort the batch", func(t *testing.T) {
		db := openMemoryDB(t)
		script := `
          CREATE TABLE t (id INTEGER);
          INSERT INTO missing_table VALUES (1);
          INSERT INTO t VALUES (42);
        `
		res, err := dumplite.LoadScript(ctx, db, script, zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, 2, res.Executed)
		require.Equal(t, 1, res.Failed)

		var id int
		require.NoError(t, db.QueryRow("SELECT id FROM t").Scan(&id))
		require.Equal(t, 42, id)
	})

	t.Run("empty script is a no-op", func(t *testing.T) {
		db := openMemoryDB(t)
		res, err := dumplite.LoadScript(ctx, db, "  \n ", zap.NewNop())
		require.NoError(t, err)
		require.Zero(t, res.Executed)
		require.Zero(t, res.Failed)
	})

	t.Run("nil logger is allowed", func(t *testing.T) {
		db := openMemoryDB(t)
		_, err := dumplite.LoadScript(ctx, db, "CREATE TABLE t (id INTEGER);", nil)
		require.NoError(t, err)
	})
}
