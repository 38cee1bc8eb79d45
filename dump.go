package dumplite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DumpDatabase serializes the schema and rows of a SQLite database into a
// textual dump on w. The output is a sequence of ';'-terminated statements
// that reloads through SplitStatements and LoadScript.
func DumpDatabase(ctx context.Context, db *sql.DB, w io.Writer) error {
	tables, err := listSQLiteTables(ctx, db)
	if err != nil {
		return err
	}

	for _, tbl := range tables {
		if _, err := fmt.Fprintf(w, "%s;\n", tbl.createSQL); err != nil {
			return err
		}
		if err := dumpTableRows(ctx, db, w, tbl.name); err != nil {
			return fmt.Errorf("dump table %s: %w", tbl.name, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

type sqliteTable struct {
	name      string
	createSQL string
}

// listSQLiteTables returns user tables and their stored DDL, skipping
// sqlite internal tables.
func listSQLiteTables(ctx context.Context, db *sql.DB) ([]sqliteTable, error) {
	rows, err := db.QueryContext(ctx, `
      SELECT name, sql
      FROM sqlite_master
      WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
      ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("read sqlite_master: %w", err)
	}
	defer rows.Close()

	var tables []sqliteTable
	for rows.Next() {
		var t sqliteTable
		var ddl sql.NullString
		if err := rows.Scan(&t.name, &ddl); err != nil {
			return nil, err
		}
		if !ddl.Valid {
			continue
		}
		t.createSQL = ddl.String
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// dumpTableRows writes one INSERT statement per row of table to w.
func dumpTableRows(ctx context.Context, db *sql.DB, w io.Writer, table string) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", quoteSQLiteIdent(table)))
	if err != nil {
		return err
	}
	defer rows.Close()
	return writeInsertRows(w, quoteSQLiteIdent(table), rows)
}

// writeInsertRows serializes every row of rows as an INSERT INTO statement.
// quotedTable must already be quoted for the dump's target dialect.
func writeInsertRows(w io.Writer, quotedTable string, rows *sql.Rows) error {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return err
	}

	values := make([]any, len(colTypes))
	scan := make([]any, len(colTypes))
	for i := range values {
		scan[i] = &values[i]
	}

	literals := make([]string, len(colTypes))
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return err
		}
		for i, v := range values {
			literals[i] = formatLiteral(v, colTypes[i].DatabaseTypeName())
		}
		if _, err := fmt.Fprintf(w, "INSERT INTO %s VALUES (%s);\n", quotedTable, strings.Join(literals, ", ")); err != nil {
			return err
		}
	}
	return rows.Err()
}

// formatLiteral renders a scanned database value as a SQL literal. dbType is
// the column's declared type, used to tell text from binary for drivers that
// hand both back as []byte. Strings are single-quoted with embedded quotes
// doubled; binary data becomes a hex blob literal; times use RFC 3339.
func formatLiteral(v any, dbType string) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case []byte:
		if isBinaryType(dbType) {
			return "X'" + hex.EncodeToString(val) + "'"
		}
		return quoteStringLiteral(string(val))
	case string:
		return quoteStringLiteral(val)
	case time.Time:
		return quoteStringLiteral(val.Format(time.RFC3339))
	default:
		return quoteStringLiteral(fmt.Sprint(val))
	}
}

// isBinaryType reports whether a declared column type holds binary data.
func isBinaryType(dbType string) bool {
	t := strings.ToUpper(dbType)
	return strings.Contains(t, "BLOB") || strings.Contains(t, "BINARY") ||
		t == "BYTEA" || t == "IMAGE"
}

// quoteStringLiteral escapes single quotes by doubling them.
func quoteStringLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteSQLiteIdent quotes an identifier with double quotes.
func quoteSQLiteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
