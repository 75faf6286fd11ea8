// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
)

// zookieVersion is the only token layout currently produced. Unknown version
// bytes are rejected on decode.
const zookieVersion = 0x01

// zookieTagSize is the number of HMAC-SHA256 bytes appended to the payload.
const zookieTagSize = 8

// Revision is the internal representation of a zookie: a snapshot, plus the
// allocating xid when the revision was produced by a write. The xid is zero
// for revisions produced by reads.
type Revision struct {
	Snapshot Snapshot
	Xid      Xid
}

// ReadSnapshot returns the snapshot a read at this revision should use. For
// write revisions the allocating xid is folded in so the write's own effect
// is visible.
func (rev Revision) ReadSnapshot() Snapshot {
	if rev.Xid != 0 {
		return rev.Snapshot.MarkComplete(rev.Xid)
	}
	return rev.Snapshot
}

// Zookies encodes revisions into opaque, URL-safe tokens and authenticates
// them with an HMAC so the backend's snapshot representation never leaks and
// tampered tokens are refused.
type Zookies struct {
	secret []byte
}

// NewZookies creates a codec using the given server secret.
func NewZookies(secret []byte) *Zookies {
	return &Zookies{secret: secret}
}

// Encode serializes and signs a revision.
func (z *Zookies) Encode(rev Revision) string {
	payload := make([]byte, 1, 64)
	payload[0] = zookieVersion
	payload = binary.AppendUvarint(payload, uint64(rev.Snapshot.Xmin))
	payload = binary.AppendUvarint(payload, uint64(rev.Snapshot.Xmax))
	payload = binary.AppendUvarint(payload, uint64(len(rev.Snapshot.XipList)))
	for _, xip := range rev.Snapshot.XipList {
		payload = binary.AppendUvarint(payload, uint64(xip))
	}
	if rev.Xid != 0 {
		payload = append(payload, 1)
		payload = binary.AppendUvarint(payload, uint64(rev.Xid))
	} else {
		payload = append(payload, 0)
	}
	payload = append(payload, z.tag(payload)...)
	return base64.RawURLEncoding.EncodeToString(payload)
}

// Decode verifies and deserializes a token.
func (z *Zookies) Decode(token string) (Revision, error) {
	payload, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Revision{}, ErrInvalidZookie.New("undecodable token")
	}
	if len(payload) < 1+zookieTagSize {
		return Revision{}, ErrInvalidZookie.New("token too short")
	}

	body, tag := payload[:len(payload)-zookieTagSize], payload[len(payload)-zookieTagSize:]
	if subtle.ConstantTimeCompare(tag, z.tag(body)) != 1 {
		return Revision{}, ErrInvalidZookie.New("signature mismatch")
	}
	if body[0] != zookieVersion {
		return Revision{}, ErrInvalidZookie.New("unknown version %d", body[0])
	}
	body = body[1:]

	var rev Revision
	xmin, body, ok := uvarint(body)
	if !ok {
		return Revision{}, ErrInvalidZookie.New("truncated xmin")
	}
	xmax, body, ok := uvarint(body)
	if !ok {
		return Revision{}, ErrInvalidZookie.New("truncated xmax")
	}
	count, body, ok := uvarint(body)
	if !ok || count > uint64(len(body)) {
		return Revision{}, ErrInvalidZookie.New("truncated xip list")
	}
	rev.Snapshot.Xmin = Xid(xmin)
	rev.Snapshot.Xmax = Xid(xmax)
	for i := uint64(0); i < count; i++ {
		var xip uint64
		xip, body, ok = uvarint(body)
		if !ok {
			return Revision{}, ErrInvalidZookie.New("truncated xip list")
		}
		rev.Snapshot.XipList = append(rev.Snapshot.XipList, Xid(xip))
	}

	if len(body) < 1 {
		return Revision{}, ErrInvalidZookie.New("truncated xid flag")
	}
	hasXid := body[0] == 1
	body = body[1:]
	if hasXid {
		var xid uint64
		xid, body, ok = uvarint(body)
		if !ok {
			return Revision{}, ErrInvalidZookie.New("truncated xid")
		}
		rev.Xid = Xid(xid)
	}
	if len(body) != 0 {
		return Revision{}, ErrInvalidZookie.New("trailing garbage")
	}
	return rev, nil
}

func (z *Zookies) tag(payload []byte) []byte {
	mac := hmac.New(sha256.New, z.secret)
	_, _ = mac.Write(payload)
	return mac.Sum(nil)[:zookieTagSize]
}

func uvarint(b []byte) (v uint64, rest []byte, ok bool) {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0, b, false
	}
	return v, b[n:], true
}
