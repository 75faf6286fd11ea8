// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package txutil provides safe transaction-encapsulation functions which have
// retry semantics as necessary.
package txutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/zeebo/errs"
	monkit "gopkg.in/spacemonkeygo/monkit.v2"

	"entgraph.io/entgraph/private/tagsql"
)

var mon = monkit.Package()

// maxRetries bounds how often a transaction callback may be re-executed after
// a transient failure before the error is returned to the caller.
const maxRetries = 5

// WithTx starts a transaction on the given database. While in the transaction,
// fn is called with a handle to the transaction in order to make use of it. If
// fn returns an error, the transaction is rolled back. If fn returns nil, the
// transaction is committed.
//
// Transactions that fail with a serialization failure or with a busy backend
// are retried with exponential backoff. If fn has any side effects outside of
// changes to the database, they must be idempotent: fn may be called more than
// one time.
func WithTx(ctx context.Context, db tagsql.DB, txOpts *sql.TxOptions, fn func(context.Context, tagsql.Tx) error) (err error) {
	defer mon.Task()(&ctx)(&err)

	delay := backoff.NewExponentialBackOff()

	for i := 0; ; i++ {
		err, rollbackErr := withTxOnce(ctx, db, txOpts, fn)
		if i < maxRetries && retryable(err) {
			mon.Event("transaction_retry")
			select {
			case <-ctx.Done():
				return errs.Combine(ctx.Err(), err, rollbackErr)
			case <-time.After(delay.NextBackOff()):
			}
			continue
		}
		if err == nil && rollbackErr == nil {
			return nil
		}
		return errs.Wrap(errs.Combine(err, rollbackErr))
	}
}

// withTxOnce creates a transaction, ensures that it is eventually released
// (commit or rollback) and passes it to the provided callback. It does not
// handle retries or anything, delegating that to callers.
func withTxOnce(ctx context.Context, db tagsql.DB, txOpts *sql.TxOptions, fn func(context.Context, tagsql.Tx) error) (err, rollbackErr error) {
	defer mon.Task()(&ctx)(&err)

	tx, err := db.BeginTx(ctx, txOpts)
	if err != nil {
		return errs.Wrap(err), nil
	}
	defer func() {
		if err == nil {
			err = tx.Commit()
		} else {
			rollbackErr = tx.Rollback()
		}
	}()

	return fn(ctx, tx), nil
}

// ResourceExhausted reports whether the error means the backend ran out of
// capacity: the connection pool is starved or the backend stayed busy past
// every retry.
func ResourceExhausted(err error) bool {
	if err == nil {
		return false
	}
	exhausted := false
	errs.IsFunc(err, func(err error) bool {
		switch e := err.(type) {
		case *pq.Error:
			code := string(e.Code)
			exhausted = code == pgerrcode.TooManyConnections ||
				code == pgerrcode.ConfigurationLimitExceeded
			return true
		case sqlite3.Error:
			exhausted = e.Code == sqlite3.ErrBusy || e.Code == sqlite3.ErrLocked
			return true
		}
		return false
	})
	return exhausted
}

// retryable reports whether the error is a transient backend failure that is
// safe to retry. Domain errors are terminal and must never come back true.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	retry := false
	errs.IsFunc(err, func(err error) bool {
		switch e := err.(type) {
		case *pq.Error:
			code := string(e.Code)
			retry = code == pgerrcode.SerializationFailure ||
				code == pgerrcode.DeadlockDetected ||
				code == pgerrcode.ConnectionFailure
			return true
		case sqlite3.Error:
			retry = e.Code == sqlite3.ErrBusy || e.Code == sqlite3.ErrLocked
			return true
		}
		return false
	})
	return retry
}
