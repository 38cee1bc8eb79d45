package dumplite

import (
	"database/sql"
	"fmt"
	"strings"
)

// PostgresClient implements Client for PostgreSQL.
type PostgresClient struct {
	baseClient
}

// NewPostgresClient creates a new PostgresClient.
func NewPostgresClient(cfg Config, db *sql.DB) *PostgresClient {
	client := &PostgresClient{
		baseClient: baseClient{
			cfg: cfg,
			db:  db,
		},
	}
	client.listTablesSQLFn = client.listTablesSQL
	client.columnsSQLFn = client.columnsSQL
	client.quoteIdentFn = client.quoteIdent
	return client
}

func (c *PostgresClient) listTablesSQL() string {
	return fmt.Sprintf(`
      SELECT table_name
      FROM information_schema.tables
      WHERE table_schema = '%s' AND table_type = 'BASE TABLE'
      ORDER BY table_name;`, c.schemaOrDefault("public"))
}

func (c *PostgresClient) columnsSQL(table string) string {
	return fmt.Sprintf(`
      SELECT column_name, data_type
      FROM information_schema.columns
      WHERE table_schema = '%s' AND table_name = '%s'
      ORDER BY ordinal_position;`, c.schemaOrDefault("public"), table)
}

func (c *PostgresClient) quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
