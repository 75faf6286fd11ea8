// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"entgraph.io/entgraph/private/tagsql"
)

// Edge is a directed, typed relationship between two live objects.
type Edge struct {
	ID       int64
	UserID   string
	FromType string
	FromID   int64
	Relation string
	ToType   string
	ToID     int64
	Metadata []byte
}

// CreateEdgeOpts describes a new edge.
type CreateEdgeOpts struct {
	UserID   string
	FromType string
	FromID   int64
	Relation string
	ToType   string
	ToID     int64
	// Metadata is an arbitrary JSON document; unlike object metadata it is
	// not bound to a registered schema.
	Metadata []byte
}

// Verify checks the request fields.
func (opts *CreateEdgeOpts) Verify() error {
	switch {
	case opts.UserID == "":
		return ErrInvalidRequest.New("user id missing")
	case opts.FromType == "" || opts.ToType == "":
		return ErrInvalidRequest.New("endpoint type missing")
	case opts.Relation == "":
		return ErrInvalidRequest.New("relation missing")
	}
	if len(opts.Metadata) > 0 && !json.Valid(opts.Metadata) {
		return ErrInvalidRequest.New("metadata is not valid JSON")
	}
	return nil
}

// checkEndpoint verifies that the object is live and stored with the declared
// type.
func (db *DB) checkEndpoint(ctx context.Context, tx queryer, declared string, id int64) error {
	stored, err := db.liveObjectType(ctx, tx, id)
	if err != nil {
		return err
	}
	if stored != declared {
		return ErrTypeMismatch.New("object %d has type %q, not %q", id, stored, declared)
	}
	return nil
}

// wouldCycle reports whether a path of live edges leads from start back to
// target. It is a BFS over the adjacency stored in triples; the candidate
// edge target→… has not been inserted yet, so reaching target means the
// insert would close a cycle.
func (db *DB) wouldCycle(ctx context.Context, tx queryer, start, target int64) (bool, error) {
	if start == target {
		return true, nil
	}

	seen := map[int64]bool{start: true}
	frontier := []int64{start}
	for len(frontier) > 0 {
		args := make([]interface{}, 0, len(frontier)+1)
		for _, id := range frontier {
			args = append(args, id)
		}
		args = append(args, int64(XidInf))

		rows, err := tx.QueryContext(ctx, db.rebind(`
			SELECT to_id FROM triples
			WHERE from_id IN (`+placeholders(len(frontier))+`) AND deleted_xid = ?
		`), args...)
		if err != nil {
			return false, Error.Wrap(err)
		}

		var next []int64
		for rows.Next() {
			var to int64
			if err := rows.Scan(&to); err != nil {
				return false, errs.Combine(Error.Wrap(err), rows.Close())
			}
			if to == target {
				return true, errs.Combine(rows.Err(), rows.Close())
			}
			if !seen[to] {
				seen[to] = true
				next = append(next, to)
			}
		}
		if err := errs.Combine(rows.Err(), rows.Close()); err != nil {
			return false, Error.Wrap(err)
		}
		frontier = next
	}
	return false, nil
}

// CreateEdge inserts a directed edge after verifying both endpoints, the
// uniqueness of the live triple and the acyclicity of the resulting graph.
func (db *DB) CreateEdge(ctx context.Context, opts CreateEdgeOpts) (_ *Edge, _ Revision, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, Revision{}, err
	}
	metadata := opts.Metadata
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}

	var edge *Edge
	var rev Revision
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		if err := db.checkEndpoint(ctx, tx, opts.FromType, opts.FromID); err != nil {
			return err
		}
		if err := db.checkEndpoint(ctx, tx, opts.ToType, opts.ToID); err != nil {
			return err
		}

		var existing int64
		err := tx.QueryRowContext(ctx, db.rebind(`
			SELECT id FROM triples
			WHERE from_type = ? AND from_id = ? AND relation = ? AND to_type = ? AND to_id = ?
				AND deleted_xid = ?
		`), opts.FromType, opts.FromID, opts.Relation, opts.ToType, opts.ToID, int64(XidInf)).Scan(&existing)
		if err == nil {
			return ErrAlreadyExists.New("edge (%d, %q, %d) already exists", opts.FromID, opts.Relation, opts.ToID)
		}
		if !errs.Is(err, sql.ErrNoRows) {
			return Error.Wrap(err)
		}

		// The candidate edge goes from→to, so any existing path to→…→from
		// closes a cycle.
		cycles, err := db.wouldCycle(ctx, tx, opts.ToID, opts.FromID)
		if err != nil {
			return err
		}
		if cycles {
			return ErrCycle.New("edge (%d, %q, %d) would close a cycle", opts.FromID, opts.Relation, opts.ToID)
		}

		rec, err := db.allocateTransaction(ctx, tx, txMetadata("create_edge", map[string]interface{}{
			"relation": opts.Relation,
		}))
		if err != nil {
			return err
		}

		id, err := db.execReturningID(ctx, tx, `
			INSERT INTO triples (user_id, from_type, from_id, relation, to_type, to_id, created_xid)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, opts.UserID, opts.FromType, opts.FromID, opts.Relation, opts.ToType, opts.ToID, int64(rec.Xid))
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			INSERT INTO edge_metadata_history (edge_id, metadata, created_xid) VALUES (?, ?, ?)
		`), id, metadata, int64(rec.Xid))
		if err != nil {
			return Error.Wrap(err)
		}

		edge = &Edge{
			ID:       id,
			UserID:   opts.UserID,
			FromType: opts.FromType,
			FromID:   opts.FromID,
			Relation: opts.Relation,
			ToType:   opts.ToType,
			ToID:     opts.ToID,
			Metadata: metadata,
		}
		rev = Revision{Snapshot: rec.Snapshot, Xid: rec.Xid}
		return nil
	})
	if err != nil {
		return nil, Revision{}, err
	}

	db.observeSnapshot(rev.ReadSnapshot())
	db.log.Debug("edge created",
		zap.Int64("id", edge.ID),
		zap.Int64("from", edge.FromID),
		zap.String("relation", edge.Relation),
		zap.Int64("to", edge.ToID))
	return edge, rev, nil
}

// GetEdge returns the live edge with the given source and relation visible at
// the snapshot, together with its target object. When several edges share the
// relation the one with the smallest id wins.
func (db *DB) GetEdge(ctx context.Context, fromID int64, relation string, snap Snapshot) (_ *Edge, _ *Object, err error) {
	defer mon.Task()(&ctx)(&err)

	cond, condArgs := visibilityFilter("t.", snap)
	args := append([]interface{}{fromID, relation}, condArgs...)

	edge := &Edge{}
	err = db.db.QueryRowContext(ctx, db.rebind(`
		SELECT t.id, t.user_id, t.from_type, t.from_id, t.relation, t.to_type, t.to_id
		FROM triples t
		WHERE t.from_id = ? AND t.relation = ? AND `+cond+`
		ORDER BY t.id ASC LIMIT 1`,
	), args...).Scan(&edge.ID, &edge.UserID, &edge.FromType, &edge.FromID, &edge.Relation, &edge.ToType, &edge.ToID)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrEdgeNotFound.New("edge (%d, %q)", fromID, relation)
		}
		return nil, nil, Error.Wrap(err)
	}

	if err := db.loadEdgeMetadata(ctx, db.db, edge, snap); err != nil {
		return nil, nil, err
	}

	target, err := db.getObject(ctx, db.db, edge.ToID, snap)
	if err != nil {
		return nil, nil, err
	}
	return edge, target, nil
}

// GetEdges returns the target objects of every live edge with the given
// source and relation visible at the snapshot, in ascending edge id order.
// An empty result is not an error.
func (db *DB) GetEdges(ctx context.Context, fromID int64, relation string, snap Snapshot) (_ []*Object, err error) {
	defer mon.Task()(&ctx)(&err)

	cond, condArgs := visibilityFilter("t.", snap)
	args := append([]interface{}{fromID, relation}, condArgs...)

	rows, err := db.db.QueryContext(ctx, db.rebind(`
		SELECT t.to_id FROM triples t
		WHERE t.from_id = ? AND t.relation = ? AND `+cond+`
		ORDER BY t.id ASC`,
	), args...)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var targetIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errs.Combine(Error.Wrap(err), rows.Close())
		}
		targetIDs = append(targetIDs, id)
	}
	if err := errs.Combine(rows.Err(), rows.Close()); err != nil {
		return nil, Error.Wrap(err)
	}

	targets := make([]*Object, 0, len(targetIDs))
	for _, id := range targetIDs {
		target, err := db.getObject(ctx, db.db, id, snap)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func (db *DB) loadEdgeMetadata(ctx context.Context, q queryer, edge *Edge, snap Snapshot) error {
	cond, condArgs := visibilityFilter("h.", snap)
	args := append([]interface{}{edge.ID}, condArgs...)
	err := q.QueryRowContext(ctx, db.rebind(`
		SELECT h.metadata FROM edge_metadata_history h
		WHERE h.edge_id = ? AND `+cond+`
		ORDER BY h.id DESC LIMIT 1`,
	), args...).Scan(&edge.Metadata)
	if err != nil && !errs.Is(err, sql.ErrNoRows) {
		return Error.Wrap(err)
	}
	return nil
}

// liveEdge loads a live edge by id inside a write transaction.
func (db *DB) liveEdge(ctx context.Context, tx queryer, id int64) (*Edge, error) {
	edge := &Edge{ID: id}
	err := tx.QueryRowContext(ctx, db.rebind(`
		SELECT user_id, from_type, from_id, relation, to_type, to_id
		FROM triples WHERE id = ? AND deleted_xid = ?
	`), id, int64(XidInf)).Scan(&edge.UserID, &edge.FromType, &edge.FromID, &edge.Relation, &edge.ToType, &edge.ToID)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return nil, ErrEdgeNotFound.New("edge %d", id)
		}
		return nil, Error.Wrap(err)
	}
	return edge, nil
}

// UpdateEdge replaces the edge's metadata. Both endpoints are re-verified so
// a stale edge cannot be revived around a concurrent object deletion.
func (db *DB) UpdateEdge(ctx context.Context, id int64, metadata []byte) (_ *Edge, _ Revision, err error) {
	defer mon.Task()(&ctx)(&err)

	if len(metadata) == 0 {
		return nil, Revision{}, ErrInvalidRequest.New("metadata missing")
	}
	if !json.Valid(metadata) {
		return nil, Revision{}, ErrInvalidRequest.New("metadata is not valid JSON")
	}

	var edge *Edge
	var rev Revision
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		edge, err = db.liveEdge(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := db.checkEndpoint(ctx, tx, edge.FromType, edge.FromID); err != nil {
			return err
		}
		if err := db.checkEndpoint(ctx, tx, edge.ToType, edge.ToID); err != nil {
			return err
		}

		rec, err := db.allocateTransaction(ctx, tx, txMetadata("update_edge", map[string]interface{}{
			"edge_id": id,
		}))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE edge_metadata_history SET deleted_xid = ? WHERE edge_id = ? AND deleted_xid = ?
		`), int64(rec.Xid), id, int64(XidInf))
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			INSERT INTO edge_metadata_history (edge_id, metadata, created_xid) VALUES (?, ?, ?)
		`), id, metadata, int64(rec.Xid))
		if err != nil {
			return Error.Wrap(err)
		}

		edge.Metadata = metadata
		rev = Revision{Snapshot: rec.Snapshot, Xid: rec.Xid}
		return nil
	})
	if err != nil {
		return nil, Revision{}, err
	}

	db.observeSnapshot(rev.ReadSnapshot())
	return edge, rev, nil
}

// DeleteEdge tombstones the edge and its live metadata version.
func (db *DB) DeleteEdge(ctx context.Context, id int64) (_ Revision, err error) {
	defer mon.Task()(&ctx)(&err)

	var rev Revision
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		if _, err := db.liveEdge(ctx, tx, id); err != nil {
			return err
		}

		rec, err := db.allocateTransaction(ctx, tx, txMetadata("delete_edge", map[string]interface{}{
			"edge_id": id,
		}))
		if err != nil {
			return err
		}
		xid, inf := int64(rec.Xid), int64(XidInf)

		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE edge_metadata_history SET deleted_xid = ? WHERE edge_id = ? AND deleted_xid = ?
		`), xid, id, inf)
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE triples SET deleted_xid = ? WHERE id = ? AND deleted_xid = ?
		`), xid, id, inf)
		if err != nil {
			return Error.Wrap(err)
		}

		rev = Revision{Snapshot: rec.Snapshot, Xid: rec.Xid}
		return nil
	})
	if err != nil {
		return Revision{}, err
	}

	db.observeSnapshot(rev.ReadSnapshot())
	db.log.Debug("edge deleted", zap.Int64("id", id))
	return rev, nil
}
