package dumplite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("postgres aliases", func(t *testing.T) {
		for _, driver := range []string{"pg", "pgx", "postgres", "PG"} {
			c, err := NewClient(Config{Driver: driver}, nil)
			require.NoError(t, err)
			require.IsType(t, &PostgresClient{}, c)
		}
	})

	t.Run("sqlserver aliases", func(t *testing.T) {
		for _, driver := range []string{"sqlserver", "mssql"} {
			c, err := NewClient(Config{Driver: driver}, nil)
			require.NoError(t, err)
			require.IsType(t, &SQLServerClient{}, c)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewClient(Config{Driver: "oracle"}, nil)
		require.Error(t, err)
	})
}

func TestClientQuoteIdent(t *testing.T) {
	pg, err := NewClient(Config{Driver: "pg"}, nil)
	require.NoError(t, err)
	require.Equal(t, `"users"`, pg.QuoteIdent("users"))
	require.Equal(t, `"od""d"`, pg.QuoteIdent(`od"d`))

	ms, err := NewClient(Config{Driver: "sqlserver"}, nil)
	require.NoError(t, err)
	require.Equal(t, "[users]", ms.QuoteIdent("users"))
	require.Equal(t, "[od]]d]", ms.QuoteIdent("od]d"))
}

func TestClientSchemaDefaults(t *testing.T) {
	pg := NewPostgresClient(Config{}, nil)
	require.True(t, strings.Contains(pg.listTablesSQL(), "table_schema = 'public'"))

	pgCustom := NewPostgresClient(Config{Schema: "reporting"}, nil)
	require.True(t, strings.Contains(pgCustom.columnsSQL("users"), "table_schema = 'reporting'"))

	ms := NewSQLServerClient(Config{}, nil)
	require.True(t, strings.Contains(ms.listTablesSQL(), "TABLE_SCHEMA = 'dbo'"))
}
