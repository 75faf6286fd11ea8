// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"context"
	"time"
)

// freshnessPollInterval is how often an at-least-as-fresh read re-checks the
// backend while waiting to catch up to the requested revision.
const freshnessPollInterval = 100 * time.Millisecond

// ConsistencyMode selects how a read picks its snapshot.
type ConsistencyMode int

const (
	// ModeFull reads at a fresh snapshot covering all committed writes.
	ModeFull ConsistencyMode = iota
	// ModeAtLeastAsFresh reads at any snapshot that includes everything the
	// given zookie's revision could see.
	ModeAtLeastAsFresh
	// ModeExactlyAt reads at precisely the zookie's revision.
	ModeExactlyAt
	// ModeMinimizeLatency reads at the freshest snapshot already known to
	// this process, skipping the backend round-trip when possible.
	ModeMinimizeLatency
)

// String returns the wire name of the mode.
func (mode ConsistencyMode) String() string {
	switch mode {
	case ModeFull:
		return "full_consistency"
	case ModeAtLeastAsFresh:
		return "at_least_as_fresh"
	case ModeExactlyAt:
		return "exactly_at"
	case ModeMinimizeLatency:
		return "minimize_latency"
	default:
		return "unknown"
	}
}

// Consistency is a read consistency requirement. The zero value asks for full
// consistency.
type Consistency struct {
	Mode   ConsistencyMode
	Zookie string
}

// FullConsistency requires a snapshot covering all committed writes.
func FullConsistency() Consistency { return Consistency{Mode: ModeFull} }

// AtLeastAsFresh requires a snapshot no older than the zookie's revision.
func AtLeastAsFresh(zookie string) Consistency {
	return Consistency{Mode: ModeAtLeastAsFresh, Zookie: zookie}
}

// ExactlyAt requires reading at precisely the zookie's revision.
func ExactlyAt(zookie string) Consistency {
	return Consistency{Mode: ModeExactlyAt, Zookie: zookie}
}

// MinimizeLatency allows reading at any snapshot this process has already
// observed.
func MinimizeLatency() Consistency { return Consistency{Mode: ModeMinimizeLatency} }

// ResolveSnapshot turns a consistency requirement into the snapshot a read
// should run at. Modes carrying a zookie fail with ErrInvalidZookie when the
// token does not verify.
func (db *DB) ResolveSnapshot(ctx context.Context, c Consistency) (_ Snapshot, err error) {
	defer mon.Task()(&ctx)(&err)

	switch c.Mode {
	case ModeFull:
		return db.currentSnapshot(ctx, db.db)

	case ModeExactlyAt:
		rev, err := db.zookies.Decode(c.Zookie)
		if err != nil {
			return Snapshot{}, err
		}
		if rev.Xid != 0 {
			// a write revision must name a transaction in our log; a signed
			// token from a different deployment sharing the secret does not.
			if _, err := db.lookupTransaction(ctx, db.db, rev.Xid); err != nil {
				if ErrInvalidRequest.Has(err) {
					return Snapshot{}, ErrInvalidZookie.New("revision names unknown transaction %d", rev.Xid)
				}
				return Snapshot{}, err
			}
		}
		return rev.ReadSnapshot(), nil

	case ModeAtLeastAsFresh:
		rev, err := db.zookies.Decode(c.Zookie)
		if err != nil {
			return Snapshot{}, err
		}
		target := rev.ReadSnapshot()

		if cached := db.lastSnapshot.Load(); cached != nil && cached.Dominates(target) {
			return *cached, nil
		}
		for {
			snap, err := db.currentSnapshot(ctx, db.db)
			if err != nil {
				return Snapshot{}, err
			}
			if snap.Dominates(target) {
				return snap, nil
			}
			select {
			case <-ctx.Done():
				return Snapshot{}, ErrStaleUnavailable.New("backend has not caught up to revision %s", target)
			case <-time.After(freshnessPollInterval):
			}
		}

	case ModeMinimizeLatency:
		if cached := db.lastSnapshot.Load(); cached != nil {
			return *cached, nil
		}
		return db.currentSnapshot(ctx, db.db)

	default:
		return Snapshot{}, ErrInvalidRequest.New("unknown consistency mode %d", c.Mode)
	}
}
