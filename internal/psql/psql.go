// Package psql shells out to the postgres client for the paths that bypass
// the engine: schema and enum scripts, the interactive prompt, and the
// high-throughput \COPY load. The contract is exit code 0 or failure; there
// is no partial-success signaling.
package psql

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/eclinichms/eclinic-admin/internal/config"
	"github.com/eclinichms/eclinic-admin/pkg/logger"
)

type Runner struct {
	cfg config.DatabaseConfig
	log *logger.Logger
}

func NewRunner(cfg config.DatabaseConfig, log *logger.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// env hands the validated PG* settings to the subprocess explicitly, so psql
// connects to the same database the engine does.
func (r *Runner) env() []string {
	return append(os.Environ(),
		"PGHOST="+r.cfg.Host,
		"PGPORT="+r.cfg.Port,
		"PGDATABASE="+r.cfg.Name,
		"PGUSER="+r.cfg.User,
		"PGPASSWORD="+r.cfg.Password,
		"PGSSLMODE="+r.cfg.SSLMode,
		"PGTZ="+r.cfg.Timezone,
	)
}

func (r *Runner) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "psql", args...)
	cmd.Env = r.env()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.log.Debug().Str("args", strings.Join(args, " ")).Msg("running psql")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("psql %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// RunScript executes a SQL script file (schema or enum initialization).
func (r *Runner) RunScript(ctx context.Context, file string) error {
	return r.run(ctx, "-f", file)
}

// Interactive starts a psql prompt with the caller's terminal attached.
func (r *Runner) Interactive(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "psql")
	cmd.Env = r.env()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("psql session: %w", err)
	}
	return nil
}

// CopyCSV bulk-loads a whole file with \COPY. Unlike the row-by-row path,
// a duplicate key fails the entire load.
func (r *Runner) CopyCSV(ctx context.Context, table, column, file string, header bool) error {
	return r.run(ctx, "-c", CopyCommand(table, column, file, header))
}

// CopyCommand renders the \COPY meta-command for a one-column CSV load.
func CopyCommand(table, column, file string, header bool) string {
	format := "CSV"
	if header {
		format = "CSV HEADER"
	}
	return fmt.Sprintf(`\COPY %s(%s) FROM %s DELIMITER ',' %s`, table, column, file, format)
}
