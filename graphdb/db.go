// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"sync/atomic"

	_ "github.com/lib/pq"           // registers postgres as a tagsql driver.
	_ "github.com/mattn/go-sqlite3" // registers sqlite3 as a tagsql driver.
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	monkit "gopkg.in/spacemonkeygo/monkit.v2"

	"entgraph.io/entgraph/private/dbutil"
	"entgraph.io/entgraph/private/dbutil/txutil"
	"entgraph.io/entgraph/private/tagsql"
)

var mon = monkit.Package()

// Config is the configuration for the graph database.
type Config struct {
	// MaxConns bounds the connection pool; one connection is held per
	// in-flight transaction.
	MaxConns int
	// ZookieSecret is the HMAC key for revision tokens.
	ZookieSecret []byte
}

// DB implements the graph storage engine on top of a relational backend.
type DB struct {
	log     *zap.Logger
	db      tagsql.DB
	impl    dbutil.Implementation
	config  Config
	zookies *Zookies
	schemas *schemaCache

	// lastSnapshot is the most recent snapshot observed by this process;
	// minimize-latency reads use it without a backend round-trip.
	lastSnapshot atomic.Pointer[Snapshot]
}

// Open opens a connection to the graph database. The URL scheme selects the
// backend: postgres:// uses native xid8/pg_snapshot support, sqlite3://
// emulates xids with a monotonic sequence.
func Open(ctx context.Context, log *zap.Logger, connstr string, config Config) (*DB, error) {
	driverName, source, impl, err := dbutil.SplitConnStr(connstr)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if len(config.ZookieSecret) == 0 {
		return nil, Error.New("zookie secret missing")
	}

	rawdb, err := tagsql.Open(ctx, driverName, source)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if config.MaxConns > 0 {
		rawdb.SetMaxOpenConns(config.MaxConns)
		rawdb.SetMaxIdleConns(config.MaxConns)
	}
	if impl.IsSQLite() {
		// sqlite cannot make progress with concurrent writers; the busy
		// handler queues them instead.
		rawdb.SetMaxOpenConns(1)
	}

	db := &DB{
		log:     log,
		db:      rawdb,
		impl:    impl,
		config:  config,
		zookies: NewZookies(config.ZookieSecret),
		schemas: newSchemaCache(),
	}

	log.Debug("connected", zap.String("implementation", impl.String()))

	return db, nil
}

// Implementation returns the backend implementation in use.
func (db *DB) Implementation() dbutil.Implementation { return db.impl }

// Zookies returns the revision token codec bound to this database.
func (db *DB) Zookies() *Zookies { return db.zookies }

// Ping checks whether the connection has been established.
func (db *DB) Ping(ctx context.Context) error {
	return Error.Wrap(db.db.PingContext(ctx))
}

// Close closes the connection to the database.
func (db *DB) Close() error {
	return Error.Wrap(db.db.Close())
}

// MigrateToLatest creates all tables and indexes.
func (db *DB) MigrateToLatest(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	var ddl string
	switch db.impl {
	case dbutil.Postgres:
		ddl = ddlPostgres
	case dbutil.SQLite:
		ddl = ddlSQLite
	default:
		return Error.New("unsupported implementation %q", db.impl)
	}

	for _, stmt := range strings.Split(ddl, ";\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.db.ExecContext(ctx, stmt); err != nil {
			return Error.New("migration failed: %v", err)
		}
	}
	return nil
}

// withTx runs fn in a serializable transaction with transient-failure
// retries. Any error from fn aborts the transaction; no partial effects
// persist.
func (db *DB) withTx(ctx context.Context, fn func(context.Context, tagsql.Tx) error) error {
	err := txutil.WithTx(ctx, db.db, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	if txutil.ResourceExhausted(err) {
		return ErrResourceExhausted.Wrap(err)
	}
	return err
}

// rebind transforms `?` placeholders into the backend's native form.
func (db *DB) rebind(query string) string {
	if db.impl != dbutil.Postgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// execReturningID runs an INSERT and returns the generated row id. The query
// must not contain a RETURNING clause; it is added for backends that support
// it.
func (db *DB) execReturningID(ctx context.Context, q queryer, query string, args ...interface{}) (id int64, err error) {
	if db.impl == dbutil.Postgres {
		err = q.QueryRowContext(ctx, db.rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, errs.Wrap(err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errs.Wrap(err)
	}
	id, err = res.LastInsertId()
	return id, errs.Wrap(err)
}

// observeSnapshot remembers the freshest snapshot seen by this process.
func (db *DB) observeSnapshot(snap Snapshot) {
	for {
		prev := db.lastSnapshot.Load()
		if prev != nil && prev.Dominates(snap) {
			return
		}
		if db.lastSnapshot.CompareAndSwap(prev, &snap) {
			return
		}
	}
}

const ddlPostgres = `
CREATE TABLE IF NOT EXISTS relation_tuple_transaction (
	xid xid8 NOT NULL DEFAULT pg_current_xact_id() PRIMARY KEY,
	snapshot pg_snapshot NOT NULL DEFAULT pg_current_snapshot(),
	timestamp timestamptz NOT NULL DEFAULT now(),
	metadata jsonb
);
CREATE INDEX IF NOT EXISTS relation_tuple_transaction_timestamp_idx ON relation_tuple_transaction (timestamp);
CREATE TABLE IF NOT EXISTS schemata (
	id bigserial PRIMARY KEY,
	type_name text NOT NULL UNIQUE,
	schema jsonb NOT NULL,
	description text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS objects (
	id bigserial PRIMARY KEY,
	user_id text NOT NULL,
	type text NOT NULL,
	created_xid bigint NOT NULL,
	deleted_xid bigint NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS objects_type_idx ON objects (type);
CREATE INDEX IF NOT EXISTS objects_user_idx ON objects (user_id);
CREATE INDEX IF NOT EXISTS objects_visibility_idx ON objects (created_xid, deleted_xid);
CREATE TABLE IF NOT EXISTS object_metadata_history (
	id bigserial PRIMARY KEY,
	object_id bigint NOT NULL REFERENCES objects (id),
	metadata jsonb NOT NULL,
	created_xid bigint NOT NULL,
	deleted_xid bigint NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS object_metadata_history_object_idx ON object_metadata_history (object_id, created_xid, deleted_xid);
CREATE TABLE IF NOT EXISTS triples (
	id bigserial PRIMARY KEY,
	user_id text NOT NULL,
	from_type text NOT NULL,
	from_id bigint NOT NULL,
	relation text NOT NULL,
	to_type text NOT NULL,
	to_id bigint NOT NULL,
	created_xid bigint NOT NULL,
	deleted_xid bigint NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS triples_from_idx ON triples (from_type, from_id);
CREATE INDEX IF NOT EXISTS triples_to_idx ON triples (to_type, to_id);
CREATE INDEX IF NOT EXISTS triples_relation_idx ON triples (relation);
CREATE INDEX IF NOT EXISTS triples_visibility_idx ON triples (created_xid, deleted_xid);
CREATE TABLE IF NOT EXISTS edge_metadata_history (
	id bigserial PRIMARY KEY,
	edge_id bigint NOT NULL REFERENCES triples (id),
	metadata jsonb NOT NULL,
	created_xid bigint NOT NULL,
	deleted_xid bigint NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS edge_metadata_history_edge_idx ON edge_metadata_history (edge_id, created_xid, deleted_xid);
`

const ddlSQLite = `
CREATE TABLE IF NOT EXISTS relation_tuple_transaction (
	xid INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot TEXT NOT NULL DEFAULT '',
	timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	metadata TEXT
);
CREATE TABLE IF NOT EXISTS schemata (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type_name TEXT NOT NULL UNIQUE,
	schema TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS objects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	type TEXT NOT NULL,
	created_xid INTEGER NOT NULL,
	deleted_xid INTEGER NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS objects_type_idx ON objects (type);
CREATE INDEX IF NOT EXISTS objects_user_idx ON objects (user_id);
CREATE INDEX IF NOT EXISTS objects_visibility_idx ON objects (created_xid, deleted_xid);
CREATE TABLE IF NOT EXISTS object_metadata_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	object_id INTEGER NOT NULL REFERENCES objects (id),
	metadata TEXT NOT NULL,
	created_xid INTEGER NOT NULL,
	deleted_xid INTEGER NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS object_metadata_history_object_idx ON object_metadata_history (object_id, created_xid, deleted_xid);
CREATE TABLE IF NOT EXISTS triples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	from_type TEXT NOT NULL,
	from_id INTEGER NOT NULL,
	relation TEXT NOT NULL,
	to_type TEXT NOT NULL,
	to_id INTEGER NOT NULL,
	created_xid INTEGER NOT NULL,
	deleted_xid INTEGER NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS triples_from_idx ON triples (from_type, from_id);
CREATE INDEX IF NOT EXISTS triples_to_idx ON triples (to_type, to_id);
CREATE INDEX IF NOT EXISTS triples_relation_idx ON triples (relation);
CREATE INDEX IF NOT EXISTS triples_visibility_idx ON triples (created_xid, deleted_xid);
CREATE TABLE IF NOT EXISTS edge_metadata_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	edge_id INTEGER NOT NULL REFERENCES triples (id),
	metadata TEXT NOT NULL,
	created_xid INTEGER NOT NULL,
	deleted_xid INTEGER NOT NULL DEFAULT 9223372036854775807
);
CREATE INDEX IF NOT EXISTS edge_metadata_history_edge_idx ON edge_metadata_history (edge_id, created_xid, deleted_xid);
`
