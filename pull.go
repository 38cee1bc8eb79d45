package dumplite

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Pull reads every table in the source database through client and writes a
// SQLite-loadable dump to w: a simplified CREATE TABLE per table followed by
// its rows as INSERT statements.
func Pull(ctx context.Context, client Client, w io.Writer) error {
	tables, err := client.ListTables(ctx)
	if err != nil {
		return err
	}

	for _, table := range tables {
		cols, err := client.Columns(ctx, table)
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			continue
		}
		if _, err := io.WriteString(w, createTableSQL(table, cols)); err != nil {
			return err
		}

		rows, err := client.SelectAll(ctx, table)
		if err != nil {
			return fmt.Errorf("select %s: %w", table, err)
		}
		err = writeInsertRows(w, quoteSQLiteIdent(table), rows)
		rows.Close()
		if err != nil {
			return fmt.Errorf("pull table %s: %w", table, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// createTableSQL builds a SQLite CREATE TABLE statement from source column
// metadata. Source types are reduced to SQLite affinities; constraints and
// indexes are not carried over.
func createTableSQL(table string, cols []Column) string {
	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = fmt.Sprintf("%s %s", quoteSQLiteIdent(col.Name), sqliteType(col.DataType))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s);\n", quoteSQLiteIdent(table), strings.Join(defs, ", "))
}

// sqliteType maps a source column type name onto a SQLite affinity.
func sqliteType(dataType string) string {
	t := strings.ToLower(dataType)
	switch {
	case strings.Contains(t, "int"), strings.Contains(t, "bool"), t == "bit":
		return "INTEGER"
	case strings.Contains(t, "real"), strings.Contains(t, "float"), strings.Contains(t, "double"):
		return "REAL"
	case strings.Contains(t, "decimal"), strings.Contains(t, "numeric"), strings.Contains(t, "money"):
		return "NUMERIC"
	case strings.Contains(t, "binary"), strings.Contains(t, "blob"), t == "bytea", t == "image":
		return "BLOB"
	default:
		// char, text, uuid, date/time and everything else.
		return "TEXT"
	}
}
