package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct{ name string }

func (f *fakeExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeTx struct {
	fakeExecutor
	committed, rolledBack bool
}

func (f *fakeTx) Commit() error   { f.committed = true; return nil }
func (f *fakeTx) Rollback() error { f.rolledBack = true; return nil }

func TestGetExecutor(t *testing.T) {
	db := &fakeExecutor{name: "db"}
	tx := &fakeTx{fakeExecutor: fakeExecutor{name: "tx"}}

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}

func TestTxManager_ReusesOuterTransaction(t *testing.T) {
	tx := &fakeTx{}
	ctx := WithTx(context.Background(), tx)

	// db не нужен: внутри транзакции новая не открывается
	m := NewTxManager(nil)

	var inner DBExecutor
	err := m.Do(ctx, func(ctx context.Context) error {
		inner = GetExecutor(ctx, nil)
		return nil
	})

	assert.NoError(t, err)
	assert.Same(t, tx, inner)
	assert.False(t, tx.committed)
}
