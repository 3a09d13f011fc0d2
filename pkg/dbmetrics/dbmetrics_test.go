package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	DBExecutor
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubExecutor struct {
	DBExecutor
}

func TestGetExecutor(t *testing.T) {
	fallback := &stubExecutor{}
	ctx := context.Background()

	assert.Same(t, fallback, GetExecutor(ctx, fallback))
	assert.False(t, IsInTransaction(ctx))

	tx := &stubTx{}
	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, fallback))
	assert.True(t, IsInTransaction(txCtx))
}

func TestOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT id FROM services":        "select",
		"  insert INTO clients (name)":   "insert",
		"UPDATE appointments SET status": "update",
		"DELETE FROM services":           "delete",
		"LOCK TABLE appointments":        "other",
		"":                               "unknown",
	}
	for query, want := range tests {
		assert.Equal(t, want, operation(query), query)
	}
}

func TestRecordStats_NilMetrics(t *testing.T) {
	d := Wrap(&sql.DB{}, nil)
	assert.NotPanics(t, d.recordStats)
}
