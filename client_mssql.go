package dumplite

import (
	"database/sql"
	"fmt"
	"strings"
)

// SQLServerClient implements Client for SQL Server.
type SQLServerClient struct {
	baseClient
}

// NewSQLServerClient creates a new SQLServerClient.
func NewSQLServerClient(cfg Config, db *sql.DB) *SQLServerClient {
	client := &SQLServerClient{
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

func (c *SQLServerClient) listTablesSQL() string {
	return fmt.Sprintf(`
      SELECT TABLE_NAME
      FROM INFORMATION_SCHEMA.TABLES
      WHERE TABLE_SCHEMA = '%s' AND TABLE_TYPE = 'BASE TABLE'
      ORDER BY TABLE_NAME;`, c.schemaOrDefault("dbo"))
}

func (c *SQLServerClient) columnsSQL(table string) string {
	return fmt.Sprintf(`
      SELECT COLUMN_NAME, DATA_TYPE
      FROM INFORMATION_SCHEMA.COLUMNS
      WHERE TABLE_SCHEMA = '%s' AND TABLE_NAME = '%s'
      ORDER BY ORDINAL_POSITION;`, c.schemaOrDefault("dbo"), table)
}

func (c *SQLServerClient) quoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
