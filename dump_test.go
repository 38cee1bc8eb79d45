package dumplite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dumplite/dumplite"
)

func TestDumpDatabase(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	setup := `
      CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT, data BLOB, score REAL);
      INSERT INTO notes VALUES (1, 'plain', NULL, 1.5);
      INSERT INTO notes VALUES (2, 'it''s; tricky', X'DEAD', NULL);
    `
	res, err := dumplite.LoadScript(ctx, db, setup, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 3, res.Executed)

	var out strings.Builder
	require.NoError(t, dumplite.DumpDatabase(ctx, db, &out))
	dump := out.String()

	require.Contains(t, dump, "CREATE TABLE notes")
	require.Contains(t, dump, `INSERT INTO "notes" VALUES (1, 'plain', NULL, 1.5);`)
	require.Contains(t, dump, "'it''s; tricky'")
	require.Contains(t, dump, "X'dead'")

	t.Run("dump reloads into a fresh database", func(t *testing.T) {
		db2 := openMemoryDB(t)
		res, err := dumplite.LoadScript(ctx, db2, dump, zap.NewNop())
		require.NoError(t, err)
		require.Zero(t, res.Failed)

		var body string
		require.NoError(t, db2.QueryRow("SELECT body FROM notes WHERE id = 2").Scan(&body))
		require.Equal(t, "it's; tricky", body)

		var blob []byte
		require.NoError(t, db2.QueryRow("SELECT data FROM notes WHERE id = 2").Scan(&blob))
		require.Equal(t, []byte{0xde, 0xad}, blob)
	})
}

func TestDumpDatabaseEmpty(t *testing.T) {
	db := openMemoryDB(t)
	var out strings.Builder
	require.NoError(t, dumplite.DumpDatabase(context.Background(), db, &out))
	require.Empty(t, out.String())
}
