package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/liftlog/internal/db"
)

func newUnitOfWork(t *testing.T) (*db.SQLiteUnitOfWork, *sql.DB) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func goal(t *testing.T, database *sql.DB) (string, bool) {
	t.Helper()
	var v string
	err := database.QueryRow(`SELECT value FROM settings WHERE key = 'daily_goal'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

func setGoal(ctx context.Context, tx db.DBTX, v string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES ('daily_goal', ?)`, v)
	return err
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	uow, database := newUnitOfWork(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return setGoal(ctx, tx, "2200")
	})
	require.NoError(t, err)

	v, ok := goal(t, database)
	assert.True(t, ok)
	assert.Equal(t, "2200", v)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow, database := newUnitOfWork(t)
	boom := errors.New("write failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		require.NoError(t, setGoal(ctx, tx, "2200"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, ok := goal(t, database)
	assert.False(t, ok)
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	uow, database := newUnitOfWork(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = setGoal(ctx, tx, "2200")
			panic("boom")
		})
	})

	_, ok := goal(t, database)
	assert.False(t, ok)
}
