// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package tagsql implements a tagged wrapper for database/sql that always
// takes a context and can be instrumented uniformly.
package tagsql

import (
	"context"
	"database/sql"

	"github.com/zeebo/errs"
)

// Open opens *sql.DB and wraps the implementation with tagging.
func Open(ctx context.Context, driverName, dataSourceName string) (DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errs.Combine(errs.Wrap(err), db.Close())
	}
	return Wrap(db), nil
}

// Wrap turns a *sql.DB into a tagged DB.
func Wrap(db *sql.DB) DB {
	return &sqlDB{db: db}
}

// DB implements a wrapper for *sql.DB-like database.
//
// The wrapper adds a context to all methods so that it is harder to forget
// to pass one through the layers.
type DB interface {
	BeginTx(ctx context.Context, txOptions *sql.TxOptions) (Tx, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	PingContext(ctx context.Context) error
	SetMaxOpenConns(n int)
	SetMaxIdleConns(n int)
	Close() error

	Internal() *sql.DB
}

// Rows implements a wrapper for *sql.Rows.
type Rows interface {
	Close() error
	Err() error
	Next() bool
	Scan(dest ...interface{}) error
}

type sqlDB struct {
	db *sql.DB
}

func (s *sqlDB) Internal() *sql.DB { return s.db }

func (s *sqlDB) BeginTx(ctx context.Context, txOptions *sql.TxOptions) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, err
	}
	return &sqlTx{tx: tx}, nil
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...interface{}) (Rows, error) {
	return s.db.QueryContext(ctx, query, args...)
}

func (s *sqlDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, query, args...)
}

func (s *sqlDB) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlDB) SetMaxOpenConns(n int) { s.db.SetMaxOpenConns(n) }
func (s *sqlDB) SetMaxIdleConns(n int) { s.db.SetMaxIdleConns(n) }

func (s *sqlDB) Close() error { return s.db.Close() }
