// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package server exposes the graph store over gRPC.
package server

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	monkit "gopkg.in/spacemonkeygo/monkit.v2"

	"entgraph.io/entgraph/graphdb"
	"entgraph.io/entgraph/pkg/auth/jwtauth"
	"entgraph.io/entgraph/pkg/pb"
)

var mon = monkit.Package()

// SchemaEndpoint implements pb.SchemaServiceServer.
type SchemaEndpoint struct {
	log *zap.Logger
	db  *graphdb.DB
}

// NewSchemaEndpoint creates a schema endpoint.
func NewSchemaEndpoint(log *zap.Logger, db *graphdb.DB) *SchemaEndpoint {
	return &SchemaEndpoint{log: log, db: db}
}

// CreateSchema registers a JSON Schema for a type.
func (endpoint *SchemaEndpoint) CreateSchema(ctx context.Context, req *pb.CreateSchemaRequest) (_ *pb.CreateSchemaResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	schema, err := endpoint.db.CreateSchema(ctx, req.GetTypeName(), req.GetSchema(), req.GetDescription())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.CreateSchemaResponse{Id: schema.ID, TypeName: schema.TypeName}, nil
}

// GetSchema returns the registered schema for a type.
func (endpoint *SchemaEndpoint) GetSchema(ctx context.Context, req *pb.GetSchemaRequest) (_ *pb.GetSchemaResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	schema, err := endpoint.db.GetSchema(ctx, req.GetTypeName())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.GetSchemaResponse{
		Id:          schema.ID,
		TypeName:    schema.TypeName,
		Schema:      schema.Document,
		Description: schema.Description,
	}, nil
}

// GraphEndpoint implements pb.GraphServiceServer.
type GraphEndpoint struct {
	log *zap.Logger
	db  *graphdb.DB
}

// NewGraphEndpoint creates a graph endpoint.
func NewGraphEndpoint(log *zap.Logger, db *graphdb.DB) *GraphEndpoint {
	return &GraphEndpoint{log: log, db: db}
}

func userID(ctx context.Context) (string, error) {
	id, ok := jwtauth.UserID(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "UNAUTHENTICATED: missing identity")
	}
	return id, nil
}

// consistency converts the wire requirement into the internal one. A missing
// requirement defaults to full consistency.
func consistency(req *pb.ConsistencyRequirement) (graphdb.Consistency, error) {
	if req == nil {
		return graphdb.FullConsistency(), nil
	}
	switch req.GetMode() {
	case pb.ConsistencyRequirement_FULL_CONSISTENCY:
		return graphdb.FullConsistency(), nil
	case pb.ConsistencyRequirement_AT_LEAST_AS_FRESH:
		if req.GetZookie().GetToken() == "" {
			return graphdb.Consistency{}, status.Error(codes.InvalidArgument, "INVALID_ARGUMENT: at_least_as_fresh requires a zookie")
		}
		return graphdb.AtLeastAsFresh(req.GetZookie().GetToken()), nil
	case pb.ConsistencyRequirement_EXACTLY_AT:
		if req.GetZookie().GetToken() == "" {
			return graphdb.Consistency{}, status.Error(codes.InvalidArgument, "INVALID_ARGUMENT: exactly_at requires a zookie")
		}
		return graphdb.ExactlyAt(req.GetZookie().GetToken()), nil
	case pb.ConsistencyRequirement_MINIMIZE_LATENCY:
		return graphdb.MinimizeLatency(), nil
	default:
		return graphdb.Consistency{}, status.Error(codes.InvalidArgument, "INVALID_ARGUMENT: unknown consistency mode")
	}
}

func (endpoint *GraphEndpoint) resolve(ctx context.Context, req *pb.ConsistencyRequirement) (graphdb.Snapshot, *pb.Zookie, error) {
	c, err := consistency(req)
	if err != nil {
		return graphdb.Snapshot{}, nil, err
	}
	snap, err := endpoint.db.ResolveSnapshot(ctx, c)
	if err != nil {
		return graphdb.Snapshot{}, nil, statusError(err)
	}
	echo := endpoint.db.Zookies().Encode(graphdb.Revision{Snapshot: snap})
	return snap, &pb.Zookie{Token: echo}, nil
}

func (endpoint *GraphEndpoint) revisionZookie(rev graphdb.Revision) *pb.Zookie {
	return &pb.Zookie{Token: endpoint.db.Zookies().Encode(rev)}
}

func objectProto(object *graphdb.Object) *pb.Object {
	return &pb.Object{
		Id:       object.ID,
		UserId:   object.UserID,
		Type:     object.Type,
		Metadata: object.Metadata,
	}
}

func edgeProto(edge *graphdb.Edge) *pb.Edge {
	return &pb.Edge{
		Id:       edge.ID,
		UserId:   edge.UserID,
		FromType: edge.FromType,
		FromId:   edge.FromID,
		Relation: edge.Relation,
		ToType:   edge.ToType,
		ToId:     edge.ToID,
		Metadata: edge.Metadata,
	}
}

// GetObject fetches the object version visible at the requested consistency.
func (endpoint *GraphEndpoint) GetObject(ctx context.Context, req *pb.GetObjectRequest) (_ *pb.GetObjectResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	snap, echo, err := endpoint.resolve(ctx, req.GetConsistency())
	if err != nil {
		return nil, err
	}
	object, err := endpoint.db.GetObject(ctx, req.GetObjectId(), snap)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.GetObjectResponse{Object: objectProto(object), Revision: echo}, nil
}

// CreateObject validates and inserts a new object.
func (endpoint *GraphEndpoint) CreateObject(ctx context.Context, req *pb.CreateObjectRequest) (_ *pb.CreateObjectResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	object, rev, err := endpoint.db.CreateObject(ctx, graphdb.CreateObjectOpts{
		UserID:   user,
		Type:     req.GetType(),
		Metadata: req.GetMetadata(),
	})
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.CreateObjectResponse{Object: objectProto(object), Revision: endpoint.revisionZookie(rev)}, nil
}

// UpdateObject replaces the object's metadata.
func (endpoint *GraphEndpoint) UpdateObject(ctx context.Context, req *pb.UpdateObjectRequest) (_ *pb.UpdateObjectResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if _, err := userID(ctx); err != nil {
		return nil, err
	}
	object, rev, err := endpoint.db.UpdateObject(ctx, req.GetObjectId(), req.GetMetadata())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.UpdateObjectResponse{Object: objectProto(object), Revision: endpoint.revisionZookie(rev)}, nil
}

// DeleteObject tombstones the object and its attached edges.
func (endpoint *GraphEndpoint) DeleteObject(ctx context.Context, req *pb.DeleteObjectRequest) (_ *pb.DeleteObjectResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if _, err := userID(ctx); err != nil {
		return nil, err
	}
	rev, err := endpoint.db.DeleteObject(ctx, req.GetObjectId())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.DeleteObjectResponse{Revision: endpoint.revisionZookie(rev)}, nil
}

// GetEdge fetches the smallest-id live edge for (object, relation) together
// with its target object.
func (endpoint *GraphEndpoint) GetEdge(ctx context.Context, req *pb.GetEdgeRequest) (_ *pb.GetEdgeResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	snap, echo, err := endpoint.resolve(ctx, req.GetConsistency())
	if err != nil {
		return nil, err
	}
	edge, target, err := endpoint.db.GetEdge(ctx, req.GetObjectId(), req.GetRelation(), snap)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.GetEdgeResponse{
		Edge:     edgeProto(edge),
		Target:   objectProto(target),
		Revision: echo,
	}, nil
}

// GetEdges lists the one-hop targets for (object, relation).
func (endpoint *GraphEndpoint) GetEdges(ctx context.Context, req *pb.GetEdgesRequest) (_ *pb.GetEdgesResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	snap, echo, err := endpoint.resolve(ctx, req.GetConsistency())
	if err != nil {
		return nil, err
	}
	targets, err := endpoint.db.GetEdges(ctx, req.GetObjectId(), req.GetRelation(), snap)
	if err != nil {
		return nil, statusError(err)
	}
	resp := &pb.GetEdgesResponse{Revision: echo}
	for _, target := range targets {
		resp.Targets = append(resp.Targets, objectProto(target))
	}
	return resp, nil
}

// CreateEdge inserts a directed edge after endpoint and cycle checks.
func (endpoint *GraphEndpoint) CreateEdge(ctx context.Context, req *pb.CreateEdgeRequest) (_ *pb.CreateEdgeResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	edge, rev, err := endpoint.db.CreateEdge(ctx, graphdb.CreateEdgeOpts{
		UserID:   user,
		FromType: req.GetFromType(),
		FromID:   req.GetFromId(),
		Relation: req.GetRelation(),
		ToType:   req.GetToType(),
		ToID:     req.GetToId(),
		Metadata: req.GetMetadata(),
	})
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.CreateEdgeResponse{Edge: edgeProto(edge), Revision: endpoint.revisionZookie(rev)}, nil
}

// UpdateEdge replaces the edge's metadata.
func (endpoint *GraphEndpoint) UpdateEdge(ctx context.Context, req *pb.UpdateEdgeRequest) (_ *pb.UpdateEdgeResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if _, err := userID(ctx); err != nil {
		return nil, err
	}
	edge, rev, err := endpoint.db.UpdateEdge(ctx, req.GetEdgeId(), req.GetMetadata())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.UpdateEdgeResponse{Edge: edgeProto(edge), Revision: endpoint.revisionZookie(rev)}, nil
}

// DeleteEdge tombstones the edge.
func (endpoint *GraphEndpoint) DeleteEdge(ctx context.Context, req *pb.DeleteEdgeRequest) (_ *pb.DeleteEdgeResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if _, err := userID(ctx); err != nil {
		return nil, err
	}
	rev, err := endpoint.db.DeleteEdge(ctx, req.GetEdgeId())
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.DeleteEdgeResponse{Revision: endpoint.revisionZookie(rev)}, nil
}
