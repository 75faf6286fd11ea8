// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package graphdb implements the transactional graph storage engine: typed
// objects, directed edges between them and multi-version concurrency control
// with tunable read consistency.
package graphdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zeebo/errs"

	"entgraph.io/entgraph/private/tagsql"
)

var (
	// Error is the default error class for graphdb.
	Error = errs.Class("graphdb")

	// ErrObjectNotFound is returned when an object is not visible at the
	// requested snapshot.
	ErrObjectNotFound = errs.Class("object not found")
	// ErrEdgeNotFound is returned when an edge is not visible at the
	// requested snapshot.
	ErrEdgeNotFound = errs.Class("edge not found")
	// ErrSchemaNotFound is returned when no schema is registered for a type.
	ErrSchemaNotFound = errs.Class("schema not found")
	// ErrAlreadyExists is returned when a write would duplicate a live row.
	ErrAlreadyExists = errs.Class("already exists")
	// ErrInvalidRequest is returned when a request is malformed.
	ErrInvalidRequest = errs.Class("invalid request")
	// ErrSchemaConflict is returned when a type is re-registered with a
	// different schema document.
	ErrSchemaConflict = errs.Class("schema conflict")
	// ErrSchemaUnsupported is returned for JSON Schema drafts other than
	// draft-7.
	ErrSchemaUnsupported = errs.Class("schema unsupported")
	// ErrValidationFailed is returned when metadata does not conform to the
	// registered schema for its type.
	ErrValidationFailed = errs.Class("validation failed")
	// ErrTypeMismatch is returned when an edge endpoint's declared type
	// disagrees with the stored object type.
	ErrTypeMismatch = errs.Class("type mismatch")
	// ErrCycle is returned when an edge insert would close a directed cycle.
	ErrCycle = errs.Class("cycle")
	// ErrInvalidZookie is returned when a zookie fails the version or HMAC
	// check.
	ErrInvalidZookie = errs.Class("invalid zookie")
	// ErrStaleUnavailable is returned when an at-least-as-fresh read could
	// not be satisfied before the deadline.
	ErrStaleUnavailable = errs.Class("stale unavailable")
	// ErrResourceExhausted is returned when the backend ran out of
	// connections or stayed busy through every retry.
	ErrResourceExhausted = errs.Class("resource exhausted")
)

// Xid is a server-assigned, monotonically increasing 64-bit transaction
// identifier. Writes are totally ordered by xid.
type Xid uint64

// XidInf is the reserved sentinel stamped into deleted_xid of rows that have
// not been deleted yet.
const XidInf = Xid(1<<63 - 1)

// String returns the decimal representation of the xid.
func (x Xid) String() string { return fmt.Sprintf("%d", uint64(x)) }

// queryer is the subset of operations shared by tagsql.DB and tagsql.Tx, so
// that read helpers can run either inside or outside of a transaction.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (tagsql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ queryer = (tagsql.DB)(nil)
	_ queryer = (tagsql.Tx)(nil)
)

// visibilityFilter returns a SQL condition, with `?` placeholders, that holds
// when the versioned row interval [created_xid, deleted_xid) is visible at the
// snapshot. The prefix is prepended to the column names so the filter can be
// applied to aliased tables.
func visibilityFilter(prefix string, snap Snapshot) (cond string, args []interface{}) {
	var b strings.Builder

	b.WriteString(prefix + "created_xid < ?")
	args = append(args, int64(snap.Xmax))
	if len(snap.XipList) > 0 {
		b.WriteString(" AND " + prefix + "created_xid NOT IN (" + placeholders(len(snap.XipList)) + ")")
		for _, xip := range snap.XipList {
			args = append(args, int64(xip))
		}
	}

	b.WriteString(" AND (" + prefix + "deleted_xid >= ?")
	args = append(args, int64(snap.Xmax))
	if len(snap.XipList) > 0 {
		b.WriteString(" OR " + prefix + "deleted_xid IN (" + placeholders(len(snap.XipList)) + ")")
		for _, xip := range snap.XipList {
			args = append(args, int64(xip))
		}
	}
	b.WriteString(")")

	return b.String(), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
