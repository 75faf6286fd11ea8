// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package dbutil contains helpers for dealing with database connection
// strings and implementation differences.
package dbutil

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the default error class for dbutil.
var Error = errs.Class("dbutil")

// Implementation type of valid DBs.
type Implementation int

const (
	// Unknown is an unknown db type.
	Unknown Implementation = iota
	// Postgres is a postgres database.
	Postgres
	// SQLite is a sqlite database.
	SQLite
)

// String returns the name of the implementation.
func (impl Implementation) String() string {
	switch impl {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite3"
	default:
		return "unknown"
	}
}

// IsPostgres reports whether the implementation is postgres.
func (impl Implementation) IsPostgres() bool { return impl == Postgres }

// IsSQLite reports whether the implementation is sqlite.
func (impl Implementation) IsSQLite() bool { return impl == SQLite }

// SplitConnStr returns the driver name, the data source and the implementation
// for the given database URL.
func SplitConnStr(s string) (driver string, source string, impl Implementation, err error) {
	parts := strings.SplitN(s, "://", 2)
	if len(parts) != 2 {
		return "", "", Unknown, Error.New("could not parse DB URL %q", s)
	}

	switch parts[0] {
	case "postgres", "postgresql":
		// the postgres driver expects the full URL as the source.
		return "postgres", s, Postgres, nil
	case "sqlite", "sqlite3":
		return "sqlite3", parts[1], SQLite, nil
	default:
		return "", "", Unknown, Error.New("unsupported database scheme %q", parts[0])
	}
}
