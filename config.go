package dumplite

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds settings for moving data between a server database and a
// local SQLite file. Values come from an optional YAML/JSON file and from
// environment variables; environment variables override file values. The
// connection string is a secret and is only read from the environment.
type Config struct {
	// SQLitePath is the embedded database file to load into or dump from.
	SQLitePath string `yaml:"sqlite_path" env:"DUMPLITE_SQLITE" env-default:"./dump.sqlite"`

	// Driver selects the pull source dialect, "pg" or "sqlserver".
	Driver string `yaml:"driver" env:"DUMPLITE_DRIVER" env-default:"pg"`

	// Conn is the server connection string for pull mode.
	Conn string `yaml:"-" env:"DUMPLITE_CONN"`

	// Schema restricts pull mode to one schema. Defaults per dialect
	// ("public" for Postgres, "dbo" for SQL Server) when empty.
	Schema string `yaml:"schema" env:"DUMPLITE_SCHEMA" env-default:""`

	// ExportCommand, when set, is an external command whose stdout is the
	// dump text to load (e.g. a pg_dump invocation).
	ExportCommand string `yaml:"export_command" env:"DUMPLITE_EXPORT_CMD" env-default:""`

	// KeepDump retains the intermediate dump file written during pull.
	KeepDump bool `yaml:"keep_dump" env:"DUMPLITE_KEEP_DUMP" env-default:"false"`

	// TempDir is where intermediate dump files are written.
	// Defaults to the system temp directory.
	TempDir string `yaml:"temp_dir" env:"DUMPLITE_TEMP_DIR" env-default:""`
}

// LoadConfig reads configuration from path (YAML or JSON) merged with the
// environment. An empty path reads the environment alone.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config from environment: %w", err)
	}
	return cfg, nil
}
