package dbmetrics

import "context"

type ctxKey struct{}

var txKey ctxKey

// WithTx stores an active transaction in the context. Repositories pick it up
// through GetExecutor, so the same repository code runs inside and outside of
// transactions.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction bound to the context, or fallback when
// the context carries none.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
