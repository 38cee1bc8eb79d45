package dumplite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// NewClient creates a pull Client for the configured driver and connection.
func NewClient(cfg Config, db *sql.DB) (Client, error) {
	switch strings.ToLower(cfg.Driver) {
	case "pg", "pgx", "postgres":
		return NewPostgresClient(cfg, db), nil
	case "sqlserver", "mssql":
		return NewSQLServerClient(cfg, db), nil
	default:
		return nil, fmt.Errorf("driver '%s' not supported. Must be one of: pg or sqlserver", cfg.Driver)
	}
}

// Client reads table metadata and rows from a server database so its
// contents can be serialized as a dump.
type Client interface {
	// ListTables returns the base table names in the configured schema.
	ListTables(ctx context.Context) ([]string, error)

	// Columns returns table's columns in ordinal order.
	Columns(ctx context.Context, table string) ([]Column, error)

	// SelectAll streams every row of table.
	SelectAll(ctx context.Context, table string) (*sql.Rows, error)

	// QuoteIdent quotes an identifier for the source dialect.
	QuoteIdent(name string) string
}

// Column describes one column of a source table.
type Column struct {
	Name     string
	DataType string
}

// baseClient provides the shared query plumbing. Concrete clients fill in
// the dialect-specific SQL builders.
type baseClient struct {
	cfg Config
	db  *sql.DB

	listTablesSQLFn func() string
	columnsSQLFn    func(table string) string
	quoteIdentFn    func(name string) string
}

func (c *baseClient) ListTables(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, c.listTablesSQLFn())
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (c *baseClient) Columns(ctx context.Context, table string) ([]Column, error) {
	rows, err := c.db.QueryContext(ctx, c.columnsSQLFn(table))
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.DataType); err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (c *baseClient) SelectAll(ctx context.Context, table string) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", c.quoteIdentFn(table)))
}

func (c *baseClient) QuoteIdent(name string) string {
	return c.quoteIdentFn(name)
}

// schemaOrDefault returns the configured schema or fallback.
func (c *baseClient) schemaOrDefault(fallback string) string {
	if c.cfg.Schema != "" {
		return c.cfg.Schema
	}
	return fallback
}
