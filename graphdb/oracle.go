// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/zeebo/errs"
)

// TransactionRecord is a row in the transaction log. Every write allocates
// one; the xid stamps the versioned rows the write touches and the snapshot
// records what the write could see.
type TransactionRecord struct {
	Xid       Xid
	Snapshot  Snapshot
	Timestamp time.Time
	Metadata  []byte
}

// allocateTransaction inserts a transaction log row inside the given write
// transaction and returns the allocated xid together with the snapshot taken
// at allocation time.
func (db *DB) allocateTransaction(ctx context.Context, tx queryer, metadata []byte) (_ TransactionRecord, err error) {
	defer mon.Task()(&ctx)(&err)

	var meta interface{}
	if len(metadata) > 0 {
		meta = metadata
	}

	if db.impl.IsPostgres() {
		// The backend stamps the row itself. xid8 and pg_snapshot round-trip
		// through their text forms.
		var rec TransactionRecord
		var xid, snapshot string
		err := tx.QueryRowContext(ctx, db.rebind(`
			INSERT INTO relation_tuple_transaction (metadata) VALUES (?)
			RETURNING xid::text, snapshot::text, timestamp
		`), meta).Scan(&xid, &snapshot, &rec.Timestamp)
		if err != nil {
			return TransactionRecord{}, errs.Wrap(err)
		}
		rec.Xid, err = parseXid(xid)
		if err != nil {
			return TransactionRecord{}, err
		}
		rec.Snapshot, err = ParseSnapshot(snapshot)
		if err != nil {
			return TransactionRecord{}, err
		}
		rec.Metadata = metadata
		return rec, nil
	}

	// sqlite has a single writer, so at allocation time every earlier xid has
	// already committed and the snapshot never carries in-progress entries.
	res, err := tx.ExecContext(ctx, `INSERT INTO relation_tuple_transaction (metadata) VALUES (?)`, meta)
	if err != nil {
		return TransactionRecord{}, errs.Wrap(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return TransactionRecord{}, errs.Wrap(err)
	}
	rec := TransactionRecord{
		Xid:       Xid(id),
		Snapshot:  Snapshot{Xmin: Xid(id), Xmax: Xid(id)},
		Timestamp: time.Now().UTC(),
		Metadata:  metadata,
	}
	_, err = tx.ExecContext(ctx, `UPDATE relation_tuple_transaction SET snapshot = ? WHERE xid = ?`,
		rec.Snapshot.String(), id)
	if err != nil {
		return TransactionRecord{}, errs.Wrap(err)
	}
	return rec, nil
}

// currentSnapshot returns a snapshot covering every committed write. Reads at
// full consistency start from it.
func (db *DB) currentSnapshot(ctx context.Context, q queryer) (_ Snapshot, err error) {
	defer mon.Task()(&ctx)(&err)

	if db.impl.IsPostgres() {
		var text string
		if err := q.QueryRowContext(ctx, `SELECT pg_current_snapshot()::text`).Scan(&text); err != nil {
			return Snapshot{}, Error.Wrap(err)
		}
		snap, err := ParseSnapshot(text)
		if err != nil {
			return Snapshot{}, err
		}
		db.observeSnapshot(snap)
		return snap, nil
	}

	var max sql.NullInt64
	if err := q.QueryRowContext(ctx, `SELECT MAX(xid) FROM relation_tuple_transaction`).Scan(&max); err != nil {
		return Snapshot{}, Error.Wrap(err)
	}
	next := Xid(max.Int64) + 1
	snap := Snapshot{Xmin: next, Xmax: next}
	db.observeSnapshot(snap)
	return snap, nil
}

// lookupTransaction fetches a transaction log row by xid.
func (db *DB) lookupTransaction(ctx context.Context, q queryer, xid Xid) (_ TransactionRecord, err error) {
	defer mon.Task()(&ctx)(&err)

	rec := TransactionRecord{Xid: xid}
	var snapshot string
	var metadata []byte

	query := `SELECT snapshot, timestamp, metadata FROM relation_tuple_transaction WHERE xid = ?`
	if db.impl.IsPostgres() {
		query = `SELECT snapshot::text, timestamp, metadata FROM relation_tuple_transaction WHERE xid = ?::text::xid8`
	}
	err = q.QueryRowContext(ctx, db.rebind(query), int64(xid)).Scan(&snapshot, &rec.Timestamp, &metadata)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return TransactionRecord{}, ErrInvalidRequest.New("unknown transaction %d", xid)
		}
		return TransactionRecord{}, Error.Wrap(err)
	}

	rec.Snapshot, err = ParseSnapshot(snapshot)
	if err != nil {
		return TransactionRecord{}, err
	}
	rec.Metadata = metadata
	return rec, nil
}

func parseXid(s string) (Xid, error) {
	x, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, Error.New("invalid xid %q", s)
	}
	return Xid(x), nil
}
