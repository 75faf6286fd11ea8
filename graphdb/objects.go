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

// Object is a typed node in the graph. Metadata is the raw JSON document that
// was validated against the type's schema when the object version was
// written.
type Object struct {
	ID       int64
	UserID   string
	Type     string
	Metadata []byte
}

// CreateObjectOpts describes a new object.
type CreateObjectOpts struct {
	UserID   string
	Type     string
	Metadata []byte
}

// Verify checks the request fields.
func (opts *CreateObjectOpts) Verify() error {
	switch {
	case opts.UserID == "":
		return ErrInvalidRequest.New("user id missing")
	case opts.Type == "":
		return ErrInvalidRequest.New("type missing")
	case len(opts.Metadata) == 0:
		return ErrInvalidRequest.New("metadata missing")
	}
	return nil
}

// txMetadata builds the transaction log annotation for a write.
func txMetadata(operation string, fields map[string]interface{}) []byte {
	doc := map[string]interface{}{"operation": operation}
	for k, v := range fields {
		doc[k] = v
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	return out
}

// CreateObject validates the metadata against the type's schema and inserts a
// new object. The returned revision captures the write for use in zookies.
func (db *DB) CreateObject(ctx context.Context, opts CreateObjectOpts) (_ *Object, _ Revision, err error) {
	defer mon.Task()(&ctx)(&err)

	if err := opts.Verify(); err != nil {
		return nil, Revision{}, err
	}

	var object *Object
	var rev Revision
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		if err := db.validateMetadata(ctx, tx, opts.Type, opts.Metadata); err != nil {
			return err
		}

		rec, err := db.allocateTransaction(ctx, tx, txMetadata("create_object", map[string]interface{}{
			"type": opts.Type,
		}))
		if err != nil {
			return err
		}

		id, err := db.execReturningID(ctx, tx, `
			INSERT INTO objects (user_id, type, created_xid) VALUES (?, ?, ?)
		`, opts.UserID, opts.Type, int64(rec.Xid))
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			INSERT INTO object_metadata_history (object_id, metadata, created_xid) VALUES (?, ?, ?)
		`), id, opts.Metadata, int64(rec.Xid))
		if err != nil {
			return Error.Wrap(err)
		}

		object = &Object{ID: id, UserID: opts.UserID, Type: opts.Type, Metadata: opts.Metadata}
		rev = Revision{Snapshot: rec.Snapshot, Xid: rec.Xid}
		return nil
	})
	if err != nil {
		return nil, Revision{}, err
	}

	db.observeSnapshot(rev.ReadSnapshot())
	db.log.Debug("object created",
		zap.Int64("id", object.ID), zap.String("type", object.Type))
	return object, rev, nil
}

// GetObject returns the version of the object visible at the snapshot.
func (db *DB) GetObject(ctx context.Context, id int64, snap Snapshot) (_ *Object, err error) {
	defer mon.Task()(&ctx)(&err)
	return db.getObject(ctx, db.db, id, snap)
}

func (db *DB) getObject(ctx context.Context, q queryer, id int64, snap Snapshot) (*Object, error) {
	cond, condArgs := visibilityFilter("o.", snap)

	object := &Object{ID: id}
	args := append([]interface{}{id}, condArgs...)
	err := q.QueryRowContext(ctx, db.rebind(`
		SELECT o.user_id, o.type FROM objects o WHERE o.id = ? AND `+cond,
	), args...).Scan(&object.UserID, &object.Type)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return nil, ErrObjectNotFound.New("object %d", id)
		}
		return nil, Error.Wrap(err)
	}

	metaCond, metaArgs := visibilityFilter("h.", snap)
	args = append([]interface{}{id}, metaArgs...)
	err = q.QueryRowContext(ctx, db.rebind(`
		SELECT h.metadata FROM object_metadata_history h
		WHERE h.object_id = ? AND `+metaCond+`
		ORDER BY h.id DESC LIMIT 1`,
	), args...).Scan(&object.Metadata)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			// objects and their first metadata version are written together,
			// so a visible object always has a visible version.
			return nil, Error.New("object %d visible without metadata", id)
		}
		return nil, Error.Wrap(err)
	}
	return object, nil
}

// liveObjectType returns the stored type of a live object inside a write
// transaction, or ErrObjectNotFound when no live version exists.
func (db *DB) liveObjectType(ctx context.Context, tx queryer, id int64) (string, error) {
	var typeName string
	err := tx.QueryRowContext(ctx, db.rebind(`
		SELECT type FROM objects WHERE id = ? AND deleted_xid = ?
	`), id, int64(XidInf)).Scan(&typeName)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return "", ErrObjectNotFound.New("object %d", id)
		}
		return "", Error.Wrap(err)
	}
	return typeName, nil
}

// UpdateObject replaces the object's metadata with a new validated document.
// The previous version stays readable at older snapshots.
func (db *DB) UpdateObject(ctx context.Context, id int64, metadata []byte) (_ *Object, _ Revision, err error) {
	defer mon.Task()(&ctx)(&err)

	if len(metadata) == 0 {
		return nil, Revision{}, ErrInvalidRequest.New("metadata missing")
	}

	var object *Object
	var rev Revision
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		typeName, err := db.liveObjectType(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := db.validateMetadata(ctx, tx, typeName, metadata); err != nil {
			return err
		}

		rec, err := db.allocateTransaction(ctx, tx, txMetadata("update_object", map[string]interface{}{
			"object_id": id,
		}))
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE object_metadata_history SET deleted_xid = ? WHERE object_id = ? AND deleted_xid = ?
		`), int64(rec.Xid), id, int64(XidInf))
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			INSERT INTO object_metadata_history (object_id, metadata, created_xid) VALUES (?, ?, ?)
		`), id, metadata, int64(rec.Xid))
		if err != nil {
			return Error.Wrap(err)
		}

		var userID string
		err = tx.QueryRowContext(ctx, db.rebind(`SELECT user_id FROM objects WHERE id = ?`), id).Scan(&userID)
		if err != nil {
			return Error.Wrap(err)
		}
		object = &Object{ID: id, UserID: userID, Type: typeName, Metadata: metadata}
		rev = Revision{Snapshot: rec.Snapshot, Xid: rec.Xid}
		return nil
	})
	if err != nil {
		return nil, Revision{}, err
	}

	db.observeSnapshot(rev.ReadSnapshot())
	return object, rev, nil
}

// DeleteObject tombstones the object and every live edge attached to it in
// one transaction, so no snapshot ever observes a dangling edge.
func (db *DB) DeleteObject(ctx context.Context, id int64) (_ Revision, err error) {
	defer mon.Task()(&ctx)(&err)

	var rev Revision
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		typeName, err := db.liveObjectType(ctx, tx, id)
		if err != nil {
			return err
		}

		rec, err := db.allocateTransaction(ctx, tx, txMetadata("delete_object", map[string]interface{}{
			"object_id": id,
		}))
		if err != nil {
			return err
		}
		xid, inf := int64(rec.Xid), int64(XidInf)

		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE edge_metadata_history SET deleted_xid = ? WHERE deleted_xid = ? AND edge_id IN (
				SELECT id FROM triples WHERE deleted_xid = ?
					AND ((from_type = ? AND from_id = ?) OR (to_type = ? AND to_id = ?))
			)
		`), xid, inf, inf, typeName, id, typeName, id)
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE triples SET deleted_xid = ? WHERE deleted_xid = ?
				AND ((from_type = ? AND from_id = ?) OR (to_type = ? AND to_id = ?))
		`), xid, inf, typeName, id, typeName, id)
		if err != nil {
			return Error.Wrap(err)
		}

		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE object_metadata_history SET deleted_xid = ? WHERE object_id = ? AND deleted_xid = ?
		`), xid, id, inf)
		if err != nil {
			return Error.Wrap(err)
		}
		_, err = tx.ExecContext(ctx, db.rebind(`
			UPDATE objects SET deleted_xid = ? WHERE id = ? AND deleted_xid = ?
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
	db.log.Debug("object deleted", zap.Int64("id", id))
	return rev, nil
}
