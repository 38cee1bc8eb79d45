package dumplite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// maxStatementLogLength bounds how much of a failing statement is logged.
const maxStatementLogLength = 100

// LoadResult reports what happened while loading a script.
type LoadResult struct {
	// Executed is the number of statements that ran successfully.
	Executed int

	// Failed is the number of statements that errored and were skipped.
	Failed int
}

// LoadScript splits script into statements and executes each one against db
// inside a single transaction. A statement that fails to execute is logged
// as a warning and skipped; one malformed statement never aborts the batch.
// The returned error covers only transaction begin/commit failures.
func LoadScript(ctx context.Context, db *sql.DB, script string, logger *zap.Logger) (LoadResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res LoadResult
	statements := SplitStatements(script)
	if len(statements) == 0 {
		return res, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin transaction: %w", err)
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			res.Failed++
			logger.Warn("statement failed",
				zap.String("statement", truncateStatement(stmt)),
				zap.Error(err))
			continue
		}
		res.Executed++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

// truncateStatement shortens a statement for log output.
func truncateStatement(stmt string) string {
	if len(stmt) <= maxStatementLogLength {
		return stmt
	}
	return stmt[:maxStatementLogLength] + "..."
}
