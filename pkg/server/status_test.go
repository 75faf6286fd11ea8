// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"entgraph.io/entgraph/graphdb"
)

func TestStatusError(t *testing.T) {
	tests := []struct {
		err   error
		code  codes.Code
		token string
	}{
		{graphdb.ErrObjectNotFound.New("object 1"), codes.NotFound, "NOT_FOUND"},
		{graphdb.ErrEdgeNotFound.New("edge 1"), codes.NotFound, "NOT_FOUND"},
		{graphdb.ErrSchemaNotFound.New("type x"), codes.NotFound, "NOT_FOUND"},
		{graphdb.ErrAlreadyExists.New("edge"), codes.AlreadyExists, "ALREADY_EXISTS"},
		{graphdb.ErrSchemaConflict.New("type x"), codes.AlreadyExists, "SCHEMA_CONFLICT"},
		{graphdb.ErrSchemaUnsupported.New("draft"), codes.InvalidArgument, "SCHEMA_UNSUPPORTED"},
		{graphdb.ErrValidationFailed.New("bad"), codes.InvalidArgument, "VALIDATION_FAILED"},
		{graphdb.ErrTypeMismatch.New("type"), codes.FailedPrecondition, "TYPE_MISMATCH"},
		{graphdb.ErrCycle.New("cycle"), codes.FailedPrecondition, "CYCLE"},
		{graphdb.ErrInvalidZookie.New("hmac"), codes.InvalidArgument, "INVALID_ZOOKIE"},
		{graphdb.ErrStaleUnavailable.New("stale"), codes.Unavailable, "STALE_UNAVAILABLE"},
		{graphdb.ErrResourceExhausted.New("pool starved"), codes.ResourceExhausted, "RESOURCE_EXHAUSTED"},
		{graphdb.ErrInvalidRequest.New("bad"), codes.InvalidArgument, "INVALID_ARGUMENT"},
		{graphdb.Error.New("backend broke"), codes.Internal, "INTERNAL"},
	}

	for _, test := range tests {
		err := statusError(test.err)
		st, ok := status.FromError(err)
		require.True(t, ok, "error %v", test.err)
		assert.Equal(t, test.code, st.Code(), "error %v", test.err)
		assert.True(t, strings.HasPrefix(st.Message(), test.token+": "),
			"message %q should start with %q", st.Message(), test.token)
	}

	assert.NoError(t, statusError(nil))
}

func TestValidationErrorDetail(t *testing.T) {
	verr := &graphdb.ValidationError{
		TypeName: "person_1",
		Violations: []graphdb.Violation{
			{Path: "/name", Message: "expected string, but got number"},
		},
	}
	err := statusError(graphdb.ErrValidationFailed.Wrap(verr))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "/name")
}
