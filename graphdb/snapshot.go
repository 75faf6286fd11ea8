// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"sort"
	"strconv"
	"strings"
)

// Snapshot describes which transaction ids are visible to a read. It uses the
// postgres convention: xids below Xmin are visible, xids at or above Xmax are
// not, and xids in XipList were still in progress when the snapshot was taken.
// A snapshot is immutable; mutating operations return a copy.
type Snapshot struct {
	Xmin    Xid
	Xmax    Xid
	XipList []Xid
}

// ParseSnapshot parses the textual `xmin:xmax:xip1,xip2` form used by
// postgres pg_snapshot values and by the transaction log.
func ParseSnapshot(s string) (Snapshot, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Snapshot{}, ErrInvalidRequest.New("invalid snapshot format %q", s)
	}

	xmin, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Snapshot{}, ErrInvalidRequest.New("invalid snapshot xmin: %v", err)
	}
	xmax, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Snapshot{}, ErrInvalidRequest.New("invalid snapshot xmax: %v", err)
	}

	var xipList []Xid
	if parts[2] != "" {
		for _, part := range strings.Split(parts[2], ",") {
			xip, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return Snapshot{}, ErrInvalidRequest.New("invalid snapshot xip: %v", err)
			}
			xipList = append(xipList, Xid(xip))
		}
		sort.Slice(xipList, func(i, k int) bool { return xipList[i] < xipList[k] })
	}

	return Snapshot{Xmin: Xid(xmin), Xmax: Xid(xmax), XipList: xipList}, nil
}

// String formats the snapshot in the `xmin:xmax:xip1,xip2` form.
func (snap Snapshot) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(snap.Xmin), 10))
	b.WriteString(":")
	b.WriteString(strconv.FormatUint(uint64(snap.Xmax), 10))
	b.WriteString(":")
	for i, xip := range snap.XipList {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.FormatUint(uint64(xip), 10))
	}
	return b.String()
}

// Visible reports whether a write stamped with the xid is visible at this
// snapshot.
func (snap Snapshot) Visible(x Xid) bool {
	if x < snap.Xmin {
		return true
	}
	if x >= snap.Xmax {
		return false
	}
	i := sort.Search(len(snap.XipList), func(i int) bool { return snap.XipList[i] >= x })
	return !(i < len(snap.XipList) && snap.XipList[i] == x)
}

// MarkComplete returns a snapshot where the given xid counts as committed.
// It is used to make a write's own transaction visible in the revision the
// write hands back to the client.
func (snap Snapshot) MarkComplete(x Xid) Snapshot {
	out := Snapshot{Xmin: snap.Xmin, Xmax: snap.Xmax}
	for _, xip := range snap.XipList {
		if xip != x {
			out.XipList = append(out.XipList, xip)
		}
	}
	if x >= out.Xmax {
		out.Xmax = x + 1
	}
	if len(out.XipList) == 0 {
		out.Xmin = out.Xmax
	} else if out.Xmin > out.XipList[0] {
		out.Xmin = out.XipList[0]
	}
	return out
}

// Dominates reports whether every xid visible in other is also visible in
// this snapshot. It is the partial order used to satisfy at-least-as-fresh
// reads.
func (snap Snapshot) Dominates(other Snapshot) bool {
	if snap.Xmax < other.Xmax {
		return false
	}
	for _, xip := range snap.XipList {
		// xids that other cannot see yet do not matter.
		if xip >= other.Xmax {
			continue
		}
		if other.Visible(xip) {
			return false
		}
	}
	return true
}
