package upload

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eclinichms/eclinic-admin/pkg/logger"
)

// Executor applies one batch of rows inside a single transaction. Either
// every row is durably written or none are; there is no partial commit and
// no per-row retry.
type Executor struct {
	db  *sqlx.DB
	log *logger.Logger
}

func NewExecutor(db *sqlx.DB, log *logger.Logger) *Executor {
	return &Executor{db: db, log: log}
}

// Run validates the batch shape, maps every row, then executes the kind's
// prepared statements in file order. Row order is load-bearing: under a
// replace policy a later duplicate key must win. Returns the number of rows
// applied.
func (e *Executor) Run(ctx context.Context, kind *Kind, rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	if err := kind.ValidateShape(rows); err != nil {
		return 0, err
	}

	// Map everything up front so parse and hash failures also abort before
	// the transaction opens.
	ops := make([]*rowOp, len(rows))
	for i, row := range rows {
		op, err := kind.mapRow(row, i)
		if err != nil {
			return 0, err
		}
		ops[i] = op
	}

	batchID := uuid.NewString()

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, &StoreError{Op: "begin", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, kind.insert.sql)
	if err != nil {
		return 0, &StoreError{Op: "prepare " + kind.insert.name, Err: err}
	}
	defer stmt.Close()

	var depStmt *sqlx.Stmt
	if kind.dependent != nil {
		depStmt, err = tx.PreparexContext(ctx, kind.dependent.sql)
		if err != nil {
			return 0, &StoreError{Op: "prepare " + kind.dependent.name, Err: err}
		}
		defer depStmt.Close()
	}

	for i, op := range ops {
		var itemID int64
		if kind.returnsID {
			if err := stmt.QueryRowxContext(ctx, op.args...).Scan(&itemID); err != nil {
				return 0, &StoreError{Op: opName(kind.insert.name, i), Err: err}
			}
		} else {
			if _, err := stmt.ExecContext(ctx, op.args...); err != nil {
				return 0, &StoreError{Op: opName(kind.insert.name, i), Err: err}
			}
		}

		if op.hasDep {
			depArgs := append([]any{itemID}, op.depArgs...)
			if _, err := depStmt.ExecContext(ctx, depArgs...); err != nil {
				return 0, &StoreError{Op: opName(kind.dependent.name, i), Err: err}
			}
		}

		e.log.Debug().
			Str("batch_id", batchID).
			Str("kind", kind.Name).
			Int("row", i).
			Msg("row applied")
	}

	if err := tx.Commit(); err != nil {
		return 0, &StoreError{Op: "commit", Err: err}
	}

	e.log.Info().
		Str("batch_id", batchID).
		Str("kind", kind.Name).
		Int("rows", len(rows)).
		Msg("batch committed")

	return len(rows), nil
}

func opName(stmt string, row int) string {
	return fmt.Sprintf("%s row %d", stmt, row)
}
