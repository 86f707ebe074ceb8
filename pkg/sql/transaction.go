package sql

import (
	"context"
	"database/sql"
	"fmt"
)

type contextKey int

const dbTransactionContextKey contextKey = iota

type (
	// Transaction runs fn in a database transaction shared through ctx.
	// Nested calls join the outer transaction, which alone commits.
	Transaction interface {
		Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
	}

	txData struct {
		ClientTx
		db TxClient
	}
)

type transaction struct {
	db TxClient
}

func NewTransaction(db TxClient) Transaction {
	return &transaction{db: db}
}

func (t *transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.db == t.db
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx = txData{ClientTx: tx, db: t.db}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil || hasParentTx {
		return err
	}

	err = storedTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// beginDetached starts a transaction stored in the returned context, the caller ends it with finish.
func beginDetached(ctx context.Context, db TxClient, lockName string) (_ context.Context, finish func(commit bool) error, err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("start db transaction: %w", err)
	}

	err = withTransactionLevelLock(ctx, lockName, tx)
	if err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}

	return context.WithValue(ctx, dbTransactionContextKey, txData{ClientTx: tx, db: db}), func(commit bool) error {
		if !commit {
			return tx.Rollback()
		}
		return tx.Commit()
	}, nil
}

// NewTransactionalClient routes queries to the transaction stored in ctx by the same database, if any.
func NewTransactionalClient(db TxClient) Client {
	return &transactionalClient{db: db}
}

type transactionalClient struct {
	db TxClient
}

func (c *transactionalClient) client(ctx context.Context) Client {
	tx, ok := ctx.Value(dbTransactionContextKey).(txData)
	if ok && tx.db == c.db {
		return tx.ClientTx
	}
	return c.db
}

func (c *transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.client(ctx).ExecContext(ctx, query, args...)
}

func (c *transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.client(ctx).GetContext(ctx, dest, query, args...)
}

func (c *transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.client(ctx).SelectContext(ctx, dest, query, args...)
}
