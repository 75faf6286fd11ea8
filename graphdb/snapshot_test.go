// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot("100:105:101,103")
	require.NoError(t, err)
	assert.Equal(t, Xid(100), snap.Xmin)
	assert.Equal(t, Xid(105), snap.Xmax)
	assert.Equal(t, []Xid{101, 103}, snap.XipList)
	assert.Equal(t, "100:105:101,103", snap.String())

	snap, err = ParseSnapshot("7:7:")
	require.NoError(t, err)
	assert.Empty(t, snap.XipList)
	assert.Equal(t, "7:7:", snap.String())

	for _, invalid := range []string{"", "1:2", "a:2:", "1:b:", "1:2:x", "1:2:3:4"} {
		_, err := ParseSnapshot(invalid)
		assert.Error(t, err, "input %q", invalid)
		assert.True(t, ErrInvalidRequest.Has(err), "input %q", invalid)
	}
}

func TestSnapshotVisible(t *testing.T) {
	snap := Snapshot{Xmin: 100, Xmax: 105, XipList: []Xid{101, 103}}

	assert.True(t, snap.Visible(99), "below xmin")
	assert.True(t, snap.Visible(100), "committed inside window")
	assert.False(t, snap.Visible(101), "in progress")
	assert.True(t, snap.Visible(102))
	assert.False(t, snap.Visible(103), "in progress")
	assert.False(t, snap.Visible(105), "at xmax")
	assert.False(t, snap.Visible(200), "beyond xmax")
}

func TestSnapshotMarkComplete(t *testing.T) {
	snap := Snapshot{Xmin: 100, Xmax: 105, XipList: []Xid{101, 103}}

	marked := snap.MarkComplete(103)
	assert.True(t, marked.Visible(103))
	assert.False(t, marked.Visible(101), "other xips stay in progress")
	// the original is unchanged.
	assert.False(t, snap.Visible(103))

	// marking an xid at or past xmax extends the window.
	own := Snapshot{Xmin: 7, Xmax: 7}
	marked = own.MarkComplete(7)
	assert.Equal(t, Xid(8), marked.Xmax)
	assert.True(t, marked.Visible(7))
}

func TestSnapshotDominates(t *testing.T) {
	older := Snapshot{Xmin: 5, Xmax: 5}
	newer := Snapshot{Xmin: 9, Xmax: 9}

	assert.True(t, newer.Dominates(older))
	assert.False(t, older.Dominates(newer))
	assert.True(t, newer.Dominates(newer), "reflexive")

	// same xmax, but with an in-progress xid the other has committed.
	committed := Snapshot{Xmin: 9, Xmax: 9}
	inProgress := Snapshot{Xmin: 7, Xmax: 9, XipList: []Xid{7}}
	assert.True(t, committed.Dominates(inProgress))
	assert.False(t, inProgress.Dominates(committed))
}
