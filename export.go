package dumplite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// RunExportCommand runs an external export command and returns its stdout as
// the dump text. Stderr is folded into the error on failure.
func RunExportCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("export command %s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("export command %s: %w", name, err)
	}
	return stdout.String(), nil
}

// WriteTempDump writes script to a uniquely named .sql file in dir (the
// system temp directory when dir is empty) and returns its path.
func WriteTempDump(dir, script string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "dumplite-"+uuid.NewString()+".sql")
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		return "", fmt.Errorf("write dump file: %w", err)
	}
	return path, nil
}

// RemoveTempDump deletes a dump file written by WriteTempDump.
func RemoveTempDump(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove dump file: %w", err)
	}
	return nil
}
