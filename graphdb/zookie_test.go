// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZookieRoundTrip(t *testing.T) {
	zookies := NewZookies([]byte("test-secret"))

	revisions := []Revision{
		{Snapshot: Snapshot{Xmin: 1, Xmax: 1}},
		{Snapshot: Snapshot{Xmin: 100, Xmax: 105, XipList: []Xid{101, 103}}},
		{Snapshot: Snapshot{Xmin: 7, Xmax: 7}, Xid: 7},
	}
	for _, rev := range revisions {
		token := zookies.Encode(rev)
		decoded, err := zookies.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, rev, decoded)
	}
}

func TestZookieTamper(t *testing.T) {
	zookies := NewZookies([]byte("test-secret"))
	token := zookies.Encode(Revision{Snapshot: Snapshot{Xmin: 10, Xmax: 12, XipList: []Xid{11}}, Xid: 12})

	_, err := zookies.Decode("")
	assert.True(t, ErrInvalidZookie.Has(err))

	_, err = zookies.Decode("not base64 ###")
	assert.True(t, ErrInvalidZookie.Has(err))

	// flip a payload byte, signature no longer matches.
	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	raw[1] ^= 0xff
	_, err = zookies.Decode(base64.RawURLEncoding.EncodeToString(raw))
	assert.True(t, ErrInvalidZookie.Has(err))

	// a token signed with a different secret is refused.
	other := NewZookies([]byte("other-secret"))
	_, err = zookies.Decode(other.Encode(Revision{Snapshot: Snapshot{Xmin: 1, Xmax: 1}}))
	assert.True(t, ErrInvalidZookie.Has(err))

	// decoding with the right secret still works.
	_, err = zookies.Decode(token)
	assert.NoError(t, err)
}

func TestZookieReadSnapshot(t *testing.T) {
	write := Revision{Snapshot: Snapshot{Xmin: 7, Xmax: 7}, Xid: 7}
	assert.True(t, write.ReadSnapshot().Visible(7), "write revisions see their own xid")

	read := Revision{Snapshot: Snapshot{Xmin: 7, Xmax: 7}}
	assert.False(t, read.ReadSnapshot().Visible(7))
}
