// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package server

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"entgraph.io/entgraph/graphdb"
)

// statusError maps a graphdb error to a gRPC status. Every taxonomy entry
// gets a stable token prefix in the message so clients can branch on it
// without parsing free text.
func statusError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case graphdb.ErrObjectNotFound.Has(err),
		graphdb.ErrEdgeNotFound.Has(err),
		graphdb.ErrSchemaNotFound.Has(err):
		return status.Error(codes.NotFound, "NOT_FOUND: "+err.Error())

	case graphdb.ErrAlreadyExists.Has(err):
		return status.Error(codes.AlreadyExists, "ALREADY_EXISTS: "+err.Error())

	case graphdb.ErrSchemaConflict.Has(err):
		return status.Error(codes.AlreadyExists, "SCHEMA_CONFLICT: "+err.Error())

	case graphdb.ErrSchemaUnsupported.Has(err):
		return status.Error(codes.InvalidArgument, "SCHEMA_UNSUPPORTED: "+err.Error())

	case graphdb.ErrValidationFailed.Has(err):
		return status.Error(codes.InvalidArgument, "VALIDATION_FAILED: "+validationDetail(err))

	case graphdb.ErrTypeMismatch.Has(err):
		return status.Error(codes.FailedPrecondition, "TYPE_MISMATCH: "+err.Error())

	case graphdb.ErrCycle.Has(err):
		return status.Error(codes.FailedPrecondition, "CYCLE: "+err.Error())

	case graphdb.ErrInvalidZookie.Has(err):
		return status.Error(codes.InvalidArgument, "INVALID_ZOOKIE: "+err.Error())

	case graphdb.ErrStaleUnavailable.Has(err):
		return status.Error(codes.Unavailable, "STALE_UNAVAILABLE: "+err.Error())

	case graphdb.ErrResourceExhausted.Has(err):
		return status.Error(codes.ResourceExhausted, "RESOURCE_EXHAUSTED: "+err.Error())

	case graphdb.ErrInvalidRequest.Has(err):
		return status.Error(codes.InvalidArgument, "INVALID_ARGUMENT: "+err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "DEADLINE_EXCEEDED: "+err.Error())

	default:
		return status.Error(codes.Internal, "INTERNAL: "+err.Error())
	}
}

// validationDetail flattens the violation list so the client message keeps
// the JSON pointer paths.
func validationDetail(err error) string {
	var verr *graphdb.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return err.Error()
}
