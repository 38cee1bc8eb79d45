// SPDX-License-Identifier: MIT

// Package dumplite moves data between server databases and local SQLite
// files.  Forward, it takes a textual SQL dump (read from a file, piped
// from stdin, produced by an external export command, or generated by
// connecting to the server directly) and loads it statement by statement
// into a SQLite database.  Reverse, it serializes a SQLite database back
// into a textual dump.
//
// The heart of the package is SplitStatements, which partitions a script
// into individual statements while tracking quoted-string and line-comment
// context, so a ';' inside a string literal or a "-- ..." comment is never
// mistaken for a statement boundary.
//
// # Quick start
//
//	import (
//	    "context"
//	    "database/sql"
//	    "os"
//
//	    _ "github.com/mattn/go-sqlite3"
//	    "github.com/dumplite/dumplite"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    db, _ := sql.Open("sqlite3", "./local.sqlite")
//	    script, _ := os.ReadFile("dump.sql")
//	    res, _ := dumplite.LoadScript(context.Background(), db, string(script), zap.NewNop())
//	    _ = res
//	}
//
// Loading is tolerant: a statement that fails to execute is logged as a
// warning and skipped, and the rest of the batch continues.
//
// # Pull mode
//
// NewClient builds a dialect-aware reader for PostgreSQL (via pgx) or SQL
// Server; Pull walks its tables and emits a SQLite-loadable dump.  Source
// column types are reduced to SQLite affinities.
//
// # CLI
//
// The dumplite command under cmd/dumplite wraps load, dump and pull; see
// its -help output for flags.
//
// All blocking operations are context-aware.
package dumplite
