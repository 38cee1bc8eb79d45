// Package main implements the dumplite CLI. It loads textual SQL dumps into
// a SQLite file, dumps a SQLite file back to SQL text, and pulls tables
// straight out of a PostgreSQL or SQL Server database.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"  // Postgres driver
	_ "github.com/mattn/go-sqlite3"     // SQLite driver
	_ "github.com/microsoft/go-mssqldb" // SQL Server driver

	"go.uber.org/zap"

	"github.com/dumplite/dumplite"
)

var versionString = dumplite.Version

func usage() {
	header := `Usage:
  dumplite [options] [command] [arguments]

Commands:
  load [dumpfile]     Load a SQL dump into the SQLite file. Reads the named
                      file, stdin when the argument is "-", or the output of
                      -export-cmd when set.
  dump                Serialize the SQLite file to SQL text (-out or stdout).
  pull                Connect to the server given by -driver/-conn, generate
                      a dump and load it into the SQLite file.

Options:`
	fmt.Fprintln(os.Stderr, header)
	flag.PrintDefaults()
}

func main() {
	sqlitePath := flag.String("sqlite", "", "SQLite file to load into or dump from. Can also be set via DUMPLITE_SQLITE env var.")
	driver := flag.String("driver", "", "Pull source driver (\"pg\" or \"sqlserver\")")
	connStr := flag.String("conn", "", "Server connection string for pull. Can also be set via DUMPLITE_CONN env var.")
	schema := flag.String("schema", "", "Schema to pull from (defaults per dialect)")
	outPath := flag.String("out", "", "Output file for dump (default stdout)")
	exportCmd := flag.String("export-cmd", "", "External export command whose stdout is the dump to load")
	keepDump := flag.Bool("keep-dump", false, "Keep the intermediate dump file written during pull")
	tempDir := flag.String("temp-dir", "", "Directory for intermediate dump files")
	configPath := flag.String("config", "", "Path to YAML/JSON configuration file (optional)")
	helpFlag := flag.Bool("help", false, "Show help message")
	versionFlag := flag.Bool("version", false, "Show version")

	flag.Usage = usage
	flag.Parse()

	// Safeguard: check for any flag-like arguments after positional arguments.
	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "-") && arg != "-" {
			fmt.Fprintln(os.Stderr, "Error: Flags must be specified before the command. Please reorder your arguments.")
			usage()
			os.Exit(1)
		}
	}

	if *helpFlag {
		usage()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Println("dumplite version:", versionString)
		os.Exit(0)
	}

	cfg, err := dumplite.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	// Flags override config and environment.
	if *sqlitePath != "" {
		cfg.SQLitePath = *sqlitePath
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *connStr != "" {
		cfg.Conn = *connStr
	}
	if *schema != "" {
		cfg.Schema = *schema
	}
	if *exportCmd != "" {
		cfg.ExportCommand = *exportCmd
	}
	if *keepDump {
		cfg.KeepDump = true
	}
	if *tempDir != "" {
		cfg.TempDir = *tempDir
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no command provided.")
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "load":
		script, err := readScript(ctx, cfg, args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading dump: %v\n", err)
			os.Exit(1)
		}
		runLoad(ctx, cfg, script, logger)
	case "dump":
		runDump(ctx, cfg, *outPath)
	case "pull":
		runPull(ctx, cfg, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		usage()
		os.Exit(1)
	}
}

// readScript obtains the dump text for the load command: the export command
// when configured, otherwise a file argument or stdin ("-").
func readScript(ctx context.Context, cfg dumplite.Config, args []string) (string, error) {
	if cfg.ExportCommand != "" {
		parts := strings.Fields(cfg.ExportCommand)
		return dumplite.RunExportCommand(ctx, parts[0], parts[1:]...)
	}
	if len(args) < 1 {
		return "", fmt.Errorf("a dump file argument (or \"-\" for stdin) is required when -export-cmd is not set")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runLoad(ctx context.Context, cfg dumplite.Config, script string, logger *zap.Logger) {
	withSQLite(cfg, func(db *sql.DB) {
		res, err := dumplite.LoadScript(ctx, db, script, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Load error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[%s] Loaded %d statements into %s (%d failed)\n",
			time.Now().Format(time.Kitchen), res.Executed, cfg.SQLitePath, res.Failed)
	})
}

func runDump(ctx context.Context, cfg dumplite.Config, outPath string) {
	withSQLite(cfg, func(db *sql.DB) {
		out := io.Writer(os.Stdout)
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		if err := dumplite.DumpDatabase(ctx, db, out); err != nil {
			fmt.Fprintf(os.Stderr, "Dump error: %v\n", err)
			os.Exit(1)
		}
		if outPath != "" {
			fmt.Printf("[%s] Dumped %s to %s\n", time.Now().Format(time.Kitchen), cfg.SQLitePath, outPath)
		}
	})
}

func runPull(ctx context.Context, cfg dumplite.Config, logger *zap.Logger) {
	if cfg.Conn == "" {
		fmt.Fprintln(os.Stderr, "Error: connection string must be provided via -conn flag or DUMPLITE_CONN environment variable")
		usage()
		os.Exit(1)
	}

	srcDB, err := sql.Open(sourceDriverName(cfg.Driver), cfg.Conn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening source database: %v\n", err)
		os.Exit(1)
	}
	defer srcDB.Close()

	client, err := dumplite.NewClient(cfg, srcDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}

	var buf strings.Builder
	if err := dumplite.Pull(ctx, client, &buf); err != nil {
		fmt.Fprintf(os.Stderr, "Pull error: %v\n", err)
		os.Exit(1)
	}
	script := buf.String()

	if cfg.KeepDump {
		path, err := dumplite.WriteTempDump(cfg.TempDir, script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing dump file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[%s] Wrote intermediate dump to %s\n", time.Now().Format(time.Kitchen), path)
	}

	runLoad(ctx, cfg, script, logger)
}

// sourceDriverName maps the configured dialect to a database/sql driver name.
func sourceDriverName(driver string) string {
	switch strings.ToLower(driver) {
	case "sqlserver", "mssql":
		return "sqlserver"
	default:
		return "pgx"
	}
}

func withSQLite(cfg dumplite.Config, f func(db *sql.DB)) {
	if cfg.SQLitePath == "" {
		fmt.Fprintln(os.Stderr, "Error: SQLite path must be provided via -sqlite flag or DUMPLITE_SQLITE environment variable")
		usage()
		os.Exit(1)
	}
	db, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	f(db)
}
