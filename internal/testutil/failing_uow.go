package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/db"
)

// FailOnNthExecUoW fails the FailOn-th ExecContext call (1-based) inside
// the transaction with Err, so tests can check that a half-written save is
// rolled back. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &countingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type countingExec struct {
	db.DBTX
	calls  int
	failOn int
	err    error
}

func (c *countingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.calls++
	if c.calls == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
