// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"entgraph.io/entgraph/graphdb"
	"entgraph.io/entgraph/private/testcontext"
)

var personSchema = []byte(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": { "type": "string" }
	}
}`)

func openTestDB(t *testing.T, ctx *testcontext.Context) *graphdb.DB {
	db, err := graphdb.Open(ctx, zaptest.NewLogger(t),
		"sqlite3://"+ctx.File("graph.db"),
		graphdb.Config{ZookieSecret: []byte("test-secret")})
	require.NoError(t, err)
	require.NoError(t, db.MigrateToLatest(ctx))
	return db
}

func TestCreateSchema(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	first, err := db.CreateSchema(ctx, "person_1", personSchema, "a person")
	require.NoError(t, err)

	// identical re-registration is idempotent and returns the stored id,
	// even with different key order.
	reordered := []byte(`{
		"properties": { "name": { "type": "string" } },
		"type": "object",
		"$schema": "http://json-schema.org/draft-07/schema#"
	}`)
	second, err := db.CreateSchema(ctx, "person_1", reordered, "a person")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// a different document for the same type conflicts.
	_, err = db.CreateSchema(ctx, "person_1", []byte(`{"type":"object"}`), "")
	assert.True(t, graphdb.ErrSchemaConflict.Has(err))

	// type names are identifier-like.
	_, err = db.CreateSchema(ctx, "no spaces allowed", personSchema, "")
	assert.True(t, graphdb.ErrInvalidRequest.Has(err))

	// other drafts are refused.
	_, err = db.CreateSchema(ctx, "modern_1",
		[]byte(`{"$schema":"https://json-schema.org/draft/2020-12/schema","type":"object"}`), "")
	assert.True(t, graphdb.ErrSchemaUnsupported.Has(err))

	_, err = db.CreateSchema(ctx, "broken_1", []byte(`{`), "")
	assert.True(t, graphdb.ErrInvalidRequest.Has(err))

	schema, err := db.GetSchema(ctx, "person_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, schema.ID)

	_, err = db.GetSchema(ctx, "missing_1")
	assert.True(t, graphdb.ErrSchemaNotFound.Has(err))
}

func TestObjectLifecycle(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)

	object, rev1, err := db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   "alice@example.test",
		Type:     "person_1",
		Metadata: []byte(`{"name":"alice"}`),
	})
	require.NoError(t, err)
	require.NotZero(t, object.ID)

	// the write is visible at full consistency.
	snap, err := db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)
	got, err := db.GetObject(ctx, object.ID, snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, string(got.Metadata))
	assert.Equal(t, "person_1", got.Type)
	assert.Equal(t, "alice@example.test", got.UserID)

	_, rev2, err := db.UpdateObject(ctx, object.ID, []byte(`{"name":"alice2"}`))
	require.NoError(t, err)

	// exactly_at the first revision still sees the original metadata.
	snap1, err := db.ResolveSnapshot(ctx, graphdb.ExactlyAt(db.Zookies().Encode(rev1)))
	require.NoError(t, err)
	got, err = db.GetObject(ctx, object.ID, snap1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, string(got.Metadata))

	snap2, err := db.ResolveSnapshot(ctx, graphdb.ExactlyAt(db.Zookies().Encode(rev2)))
	require.NoError(t, err)
	got, err = db.GetObject(ctx, object.ID, snap2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice2"}`, string(got.Metadata))

	// updates re-validate against the schema.
	_, _, err = db.UpdateObject(ctx, object.ID, []byte(`{"name":42}`))
	assert.True(t, graphdb.ErrValidationFailed.Has(err))

	_, err = db.DeleteObject(ctx, object.ID)
	require.NoError(t, err)

	snap, err = db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)
	_, err = db.GetObject(ctx, object.ID, snap)
	assert.True(t, graphdb.ErrObjectNotFound.Has(err))

	// history stays readable at the old snapshot.
	got, err = db.GetObject(ctx, object.ID, snap1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, string(got.Metadata))

	_, _, err = db.UpdateObject(ctx, object.ID, []byte(`{"name":"zombie"}`))
	assert.True(t, graphdb.ErrObjectNotFound.Has(err), "deleted objects cannot be updated")
}

func TestCreateObjectWithoutSchema(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, _, err := db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   "alice@example.test",
		Type:     "unknown_42",
		Metadata: []byte(`{}`),
	})
	assert.True(t, graphdb.ErrSchemaNotFound.Has(err))
}

func TestCreateObjectValidation(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)

	_, _, err = db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   "alice@example.test",
		Type:     "person_1",
		Metadata: []byte(`{"name":42}`),
	})
	require.True(t, graphdb.ErrValidationFailed.Has(err))

	var verr *graphdb.ValidationError
	require.True(t, errors.As(err, &verr))
	require.NotEmpty(t, verr.Violations)
	assert.Equal(t, "/name", verr.Violations[0].Path)

	_, _, err = db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   "alice@example.test",
		Type:     "person_1",
		Metadata: []byte(`not json`),
	})
	assert.True(t, graphdb.ErrInvalidRequest.Has(err))
}

func createPerson(t *testing.T, ctx *testcontext.Context, db *graphdb.DB, name string) *graphdb.Object {
	object, _, err := db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   "alice@example.test",
		Type:     "person_1",
		Metadata: []byte(`{"name":"` + name + `"}`),
	})
	require.NoError(t, err)
	return object
}

func TestEdges(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)

	a := createPerson(t, ctx, db, "a")
	b := createPerson(t, ctx, db, "b")
	c := createPerson(t, ctx, db, "c")

	edge, _, err := db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: b.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, edge.ID)

	// the same live triple cannot be inserted twice.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: b.ID,
	})
	assert.True(t, graphdb.ErrAlreadyExists.Has(err))

	// the reverse edge closes a cycle.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: b.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: a.ID,
	})
	assert.True(t, graphdb.ErrCycle.Has(err))

	// so does a self loop.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "knows",
		ToType:   "person_1", ToID: a.ID,
	})
	assert.True(t, graphdb.ErrCycle.Has(err))

	// a longer path is detected too: a→b→c exists, c→a would close it.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: b.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: c.ID,
	})
	require.NoError(t, err)
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: c.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: a.ID,
	})
	assert.True(t, graphdb.ErrCycle.Has(err))

	snap, err := db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)

	got, target, err := db.GetEdge(ctx, a.ID, "follows", snap)
	require.NoError(t, err)
	assert.Equal(t, edge.ID, got.ID)
	assert.Equal(t, b.ID, target.ID)
	assert.JSONEq(t, `{"name":"b"}`, string(target.Metadata))

	_, _, err = db.GetEdge(ctx, a.ID, "blocks", snap)
	assert.True(t, graphdb.ErrEdgeNotFound.Has(err))

	// a second follows target lists in edge id order.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: c.ID,
	})
	require.NoError(t, err)

	snap, err = db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)
	targets, err := db.GetEdges(ctx, a.ID, "follows", snap)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, b.ID, targets[0].ID)
	assert.Equal(t, c.ID, targets[1].ID)

	targets, err = db.GetEdges(ctx, c.ID, "follows", snap)
	require.NoError(t, err)
	assert.Empty(t, targets, "no edges is not an error")
}

func TestEdgeEndpointChecks(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)
	a := createPerson(t, ctx, db, "a")
	b := createPerson(t, ctx, db, "b")

	// declared type must match the stored type.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "robot_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: b.ID,
	})
	assert.True(t, graphdb.ErrTypeMismatch.Has(err))

	// both endpoints must exist.
	_, _, err = db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: 424242,
	})
	assert.True(t, graphdb.ErrObjectNotFound.Has(err))
}

func TestEdgeMetadata(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)
	a := createPerson(t, ctx, db, "a")
	b := createPerson(t, ctx, db, "b")

	edge, rev1, err := db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: b.ID,
		Metadata: []byte(`{"since":2020}`),
	})
	require.NoError(t, err)

	_, _, err = db.UpdateEdge(ctx, edge.ID, []byte(`{"since":2021}`))
	require.NoError(t, err)

	snap, err := db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)
	got, _, err := db.GetEdge(ctx, a.ID, "follows", snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"since":2021}`, string(got.Metadata))

	// the old version is still visible at the creation revision.
	snap1, err := db.ResolveSnapshot(ctx, graphdb.ExactlyAt(db.Zookies().Encode(rev1)))
	require.NoError(t, err)
	got, _, err = db.GetEdge(ctx, a.ID, "follows", snap1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"since":2020}`, string(got.Metadata))

	_, err = db.DeleteEdge(ctx, edge.ID)
	require.NoError(t, err)

	snap, err = db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)
	_, _, err = db.GetEdge(ctx, a.ID, "follows", snap)
	assert.True(t, graphdb.ErrEdgeNotFound.Has(err))

	_, _, err = db.UpdateEdge(ctx, edge.ID, []byte(`{}`))
	assert.True(t, graphdb.ErrEdgeNotFound.Has(err))
}

func TestDeleteObjectCascades(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)
	a := createPerson(t, ctx, db, "a")
	b := createPerson(t, ctx, db, "b")

	_, rev, err := db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   "alice@example.test",
		FromType: "person_1", FromID: a.ID,
		Relation: "follows",
		ToType:   "person_1", ToID: b.ID,
	})
	require.NoError(t, err)

	_, err = db.DeleteObject(ctx, b.ID)
	require.NoError(t, err)

	// the edge to the deleted object is gone at fresh snapshots.
	snap, err := db.ResolveSnapshot(ctx, graphdb.FullConsistency())
	require.NoError(t, err)
	_, _, err = db.GetEdge(ctx, a.ID, "follows", snap)
	assert.True(t, graphdb.ErrEdgeNotFound.Has(err))

	// but still there before the delete.
	snapBefore, err := db.ResolveSnapshot(ctx, graphdb.ExactlyAt(db.Zookies().Encode(rev)))
	require.NoError(t, err)
	_, target, err := db.GetEdge(ctx, a.ID, "follows", snapBefore)
	require.NoError(t, err)
	assert.Equal(t, b.ID, target.ID)
}

func TestConsistencyModes(t *testing.T) {
	ctx := testcontext.New(t)
	defer ctx.Cleanup()
	db := openTestDB(t, ctx)
	defer ctx.Check(db.Close)

	_, err := db.CreateSchema(ctx, "person_1", personSchema, "")
	require.NoError(t, err)
	object, rev, err := db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   "alice@example.test",
		Type:     "person_1",
		Metadata: []byte(`{"name":"alice"}`),
	})
	require.NoError(t, err)

	// minimize latency sees the process's own writes.
	snap, err := db.ResolveSnapshot(ctx, graphdb.MinimizeLatency())
	require.NoError(t, err)
	_, err = db.GetObject(ctx, object.ID, snap)
	require.NoError(t, err)

	// at_least_as_fresh with a revision we just produced resolves promptly.
	snap, err = db.ResolveSnapshot(ctx, graphdb.AtLeastAsFresh(db.Zookies().Encode(rev)))
	require.NoError(t, err)
	_, err = db.GetObject(ctx, object.ID, snap)
	require.NoError(t, err)

	// an undecodable token is rejected for both zookie modes.
	_, err = db.ResolveSnapshot(ctx, graphdb.ExactlyAt("garbage"))
	assert.True(t, graphdb.ErrInvalidZookie.Has(err))
	_, err = db.ResolveSnapshot(ctx, graphdb.AtLeastAsFresh("garbage"))
	assert.True(t, graphdb.ErrInvalidZookie.Has(err))

	// exactly_at with a signed write revision that names a transaction this
	// database never ran is rejected.
	foreign := db.Zookies().Encode(graphdb.Revision{
		Snapshot: graphdb.Snapshot{Xmin: 1 << 40, Xmax: 1 << 40},
		Xid:      1 << 40,
	})
	_, err = db.ResolveSnapshot(ctx, graphdb.ExactlyAt(foreign))
	assert.True(t, graphdb.ErrInvalidZookie.Has(err))

	// a validly signed revision from the future cannot be satisfied and
	// fails with stale unavailable once the deadline passes.
	future := db.Zookies().Encode(graphdb.Revision{
		Snapshot: graphdb.Snapshot{Xmin: 1 << 40, Xmax: 1 << 40},
	})
	deadlineCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, err = db.ResolveSnapshot(deadlineCtx, graphdb.AtLeastAsFresh(future))
	assert.True(t, graphdb.ErrStaleUnavailable.Has(err))
}
