// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package graphdb

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"entgraph.io/entgraph/private/tagsql"
)

// typeNameRx constrains type names to identifier-like strings so they can be
// embedded in schema resource URLs and log lines without escaping.
var typeNameRx = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// draft7URLs are the `$schema` values accepted for registered documents.
var draft7URLs = map[string]bool{
	"http://json-schema.org/draft-07/schema#":  true,
	"http://json-schema.org/draft-07/schema":   true,
	"https://json-schema.org/draft-07/schema#": true,
	"https://json-schema.org/draft-07/schema":  true,
}

// Schema is a registered metadata contract for an object type.
type Schema struct {
	ID          int64
	TypeName    string
	Document    []byte
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Violation describes a single point where metadata breaks its schema.
type Violation struct {
	// Path is a JSON pointer into the offending metadata.
	Path    string
	Message string
}

// ValidationError carries the full list of schema violations for a metadata
// document. It is always wrapped in ErrValidationFailed.
type ValidationError struct {
	TypeName   string
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("metadata does not conform to schema for type ")
	b.WriteString(e.TypeName)
	for _, v := range e.Violations {
		b.WriteString("; ")
		if v.Path != "" {
			b.WriteString(v.Path)
			b.WriteString(": ")
		}
		b.WriteString(v.Message)
	}
	return b.String()
}

// schemaCache keeps compiled validators keyed by type name. Entries are
// invalidated whenever the stored document changes.
type schemaCache struct {
	mu       sync.RWMutex
	compiled map[string]*compiledSchema
}

type compiledSchema struct {
	document []byte
	schema   *jsonschema.Schema
}

func newSchemaCache() *schemaCache {
	return &schemaCache{compiled: make(map[string]*compiledSchema)}
}

func (c *schemaCache) get(typeName string, document []byte) *jsonschema.Schema {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.compiled[typeName]
	if !ok || !bytes.Equal(entry.document, document) {
		return nil
	}
	return entry.schema
}

func (c *schemaCache) put(typeName string, document []byte, schema *jsonschema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compiled[typeName] = &compiledSchema{document: document, schema: schema}
}

// compileSchema validates a schema document and compiles it for draft-7.
func compileSchema(typeName string, document []byte) (*jsonschema.Schema, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(document, &doc); err != nil {
		return nil, ErrInvalidRequest.New("schema is not a JSON object: %v", err)
	}
	if meta, ok := doc["$schema"]; ok {
		metaURL, ok := meta.(string)
		if !ok || !draft7URLs[metaURL] {
			return nil, ErrSchemaUnsupported.New("only JSON Schema draft-07 is supported")
		}
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	url := "entgraph:///" + typeName + ".json"
	if err := compiler.AddResource(url, bytes.NewReader(document)); err != nil {
		return nil, ErrInvalidRequest.New("invalid schema: %v", err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, ErrInvalidRequest.New("invalid schema: %v", err)
	}
	return schema, nil
}

// canonicalJSON re-encodes a JSON document with sorted keys so that
// semantically equal documents compare equal.
func canonicalJSON(raw []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errs.Wrap(err)
	}
	return json.Marshal(v)
}

// CreateSchema registers a JSON Schema document for a type. Re-registering an
// identical document is idempotent and returns the stored schema; a different
// document for an existing type is rejected with ErrSchemaConflict.
func (db *DB) CreateSchema(ctx context.Context, typeName string, document []byte, description string) (_ *Schema, err error) {
	defer mon.Task()(&ctx)(&err)

	if !typeNameRx.MatchString(typeName) {
		return nil, ErrInvalidRequest.New("invalid type name %q", typeName)
	}
	canonical, err := canonicalJSON(document)
	if err != nil {
		return nil, ErrInvalidRequest.New("schema is not valid JSON: %v", err)
	}
	compiled, err := compileSchema(typeName, canonical)
	if err != nil {
		return nil, err
	}

	var schema *Schema
	err = db.withTx(ctx, func(ctx context.Context, tx tagsql.Tx) error {
		existing, err := db.getSchema(ctx, tx, typeName)
		if err != nil && !ErrSchemaNotFound.Has(err) {
			return err
		}
		if existing != nil {
			if !bytes.Equal(existing.Document, canonical) {
				return ErrSchemaConflict.New("type %q is already registered with a different schema", typeName)
			}
			schema = existing
			return nil
		}

		now := time.Now().UTC()
		id, err := db.execReturningID(ctx, tx, `
			INSERT INTO schemata (type_name, schema, description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, typeName, canonical, description, now, now)
		if err != nil {
			return Error.Wrap(err)
		}
		schema = &Schema{
			ID:          id,
			TypeName:    typeName,
			Document:    canonical,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	db.schemas.put(typeName, canonical, compiled)
	db.log.Debug("schema registered", zap.String("type", typeName), zap.Int64("id", schema.ID))
	return schema, nil
}

// GetSchema returns the registered schema for a type.
func (db *DB) GetSchema(ctx context.Context, typeName string) (_ *Schema, err error) {
	defer mon.Task()(&ctx)(&err)
	return db.getSchema(ctx, db.db, typeName)
}

func (db *DB) getSchema(ctx context.Context, q queryer, typeName string) (*Schema, error) {
	schema := &Schema{TypeName: typeName}
	err := q.QueryRowContext(ctx, db.rebind(`
		SELECT id, schema, description, created_at, updated_at
		FROM schemata WHERE type_name = ?
	`), typeName).Scan(&schema.ID, &schema.Document, &schema.Description, &schema.CreatedAt, &schema.UpdatedAt)
	if err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return nil, ErrSchemaNotFound.New("no schema registered for type %q", typeName)
		}
		return nil, Error.Wrap(err)
	}
	return schema, nil
}

// validateMetadata checks metadata against the schema registered for the
// type. Objects of types with no registered schema cannot be created at all.
func (db *DB) validateMetadata(ctx context.Context, q queryer, typeName string, metadata []byte) error {
	schema, err := db.getSchema(ctx, q, typeName)
	if err != nil {
		return err
	}

	compiled := db.schemas.get(typeName, schema.Document)
	if compiled == nil {
		compiled, err = compileSchema(typeName, schema.Document)
		if err != nil {
			return err
		}
		db.schemas.put(typeName, schema.Document, compiled)
	}

	var doc interface{}
	if err := json.Unmarshal(metadata, &doc); err != nil {
		return ErrInvalidRequest.New("metadata is not valid JSON: %v", err)
	}

	if err := compiled.Validate(doc); err != nil {
		verr := &ValidationError{TypeName: typeName}
		var collect func(*jsonschema.ValidationError)
		collect = func(ve *jsonschema.ValidationError) {
			if len(ve.Causes) == 0 {
				verr.Violations = append(verr.Violations, Violation{
					Path:    ve.InstanceLocation,
					Message: ve.Message,
				})
				return
			}
			for _, cause := range ve.Causes {
				collect(cause)
			}
		}
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			collect(ve)
		} else {
			verr.Violations = append(verr.Violations, Violation{Message: err.Error()})
		}
		return ErrValidationFailed.Wrap(verr)
	}
	return nil
}
