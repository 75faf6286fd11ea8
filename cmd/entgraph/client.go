// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"entgraph.io/entgraph/pkg/pb"
	"entgraph.io/entgraph/pkg/process"
)

var (
	errInvalidConfig = errs.Class("invalid config")
	errClient        = errs.Class("client")
)

var (
	clientAddress     string
	clientToken       string
	clientConsistency string
	clientZookie      string

	schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Manage type schemata",
	}
	schemaCreateCmd = &cobra.Command{
		Use:   "create <type-name> <schema-json-or-@file>",
		Short: "Register a JSON Schema for a type",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdSchemaCreate,
	}
	schemaGetCmd = &cobra.Command{
		Use:   "get <type-name>",
		Short: "Show the registered schema for a type",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdSchemaGet,
	}
	schemaDescription string

	objectCmd = &cobra.Command{
		Use:   "object",
		Short: "Manage objects",
	}
	objectCreateCmd = &cobra.Command{
		Use:   "create <type> <metadata-json-or-@file>",
		Short: "Create an object",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdObjectCreate,
	}
	objectGetCmd = &cobra.Command{
		Use:   "get <object-id>",
		Short: "Fetch an object",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdObjectGet,
	}
	objectUpdateCmd = &cobra.Command{
		Use:   "update <object-id> <metadata-json-or-@file>",
		Short: "Replace an object's metadata",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdObjectUpdate,
	}
	objectDeleteCmd = &cobra.Command{
		Use:   "delete <object-id>",
		Short: "Delete an object and its edges",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdObjectDelete,
	}

	edgeCmd = &cobra.Command{
		Use:   "edge",
		Short: "Manage edges",
	}
	edgeCreateCmd = &cobra.Command{
		Use:   "create <from-type> <from-id> <relation> <to-type> <to-id> [metadata-json]",
		Short: "Create a directed edge",
		Args:  cobra.RangeArgs(5, 6),
		RunE:  cmdEdgeCreate,
	}
	edgeGetCmd = &cobra.Command{
		Use:   "get <object-id> <relation>",
		Short: "Fetch an edge and its target object",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdEdgeGet,
	}
	edgeListCmd = &cobra.Command{
		Use:   "list <object-id> <relation>",
		Short: "List one-hop targets",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdEdgeList,
	}
	edgeUpdateCmd = &cobra.Command{
		Use:   "update <edge-id> <metadata-json-or-@file>",
		Short: "Replace an edge's metadata",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdEdgeUpdate,
	}
	edgeDeleteCmd = &cobra.Command{
		Use:   "delete <edge-id>",
		Short: "Delete an edge",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdEdgeDelete,
	}
)

func init() {
	schemaCmd.AddCommand(schemaCreateCmd, schemaGetCmd)
	objectCmd.AddCommand(objectCreateCmd, objectGetCmd, objectUpdateCmd, objectDeleteCmd)
	edgeCmd.AddCommand(edgeCreateCmd, edgeGetCmd, edgeListCmd, edgeUpdateCmd, edgeDeleteCmd)

	schemaCreateCmd.Flags().StringVar(&schemaDescription, "description", "", "human readable schema description")

	for _, cmd := range []*cobra.Command{schemaCmd, objectCmd, edgeCmd} {
		cmd.PersistentFlags().StringVar(&clientAddress, "address", "localhost:7777", "server address")
		cmd.PersistentFlags().StringVar(&clientToken, "token", "", "bearer token for authentication")
	}
	for _, cmd := range []*cobra.Command{objectGetCmd, edgeGetCmd, edgeListCmd} {
		cmd.Flags().StringVar(&clientConsistency, "consistency", "full",
			"read consistency: full, fresh, exact or latency")
		cmd.Flags().StringVar(&clientZookie, "zookie", "", "zookie for fresh/exact reads")
	}
}

// dial connects to the server and returns a context carrying the bearer
// token.
func dial(cmd *cobra.Command) (context.Context, context.CancelFunc, *grpc.ClientConn, error) {
	ctx, cancel := process.Ctx(cmd)

	conn, err := grpc.DialContext(ctx, clientAddress, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		cancel()
		return nil, nil, nil, errClient.Wrap(err)
	}
	if clientToken != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+clientToken)
	}
	return ctx, cancel, conn, nil
}

// consistencyRequirement builds the wire requirement from the CLI flags.
func consistencyRequirement() (*pb.ConsistencyRequirement, error) {
	req := &pb.ConsistencyRequirement{}
	switch clientConsistency {
	case "", "full":
		req.Mode = pb.ConsistencyRequirement_FULL_CONSISTENCY
	case "fresh":
		req.Mode = pb.ConsistencyRequirement_AT_LEAST_AS_FRESH
	case "exact":
		req.Mode = pb.ConsistencyRequirement_EXACTLY_AT
	case "latency":
		req.Mode = pb.ConsistencyRequirement_MINIMIZE_LATENCY
	default:
		return nil, errClient.New("unknown consistency %q", clientConsistency)
	}
	if clientZookie != "" {
		req.Zookie = &pb.Zookie{Token: clientZookie}
	}
	return req, nil
}

// jsonArg reads a JSON document from a literal argument or, with a leading @,
// from a file.
func jsonArg(arg string) ([]byte, error) {
	if len(arg) > 0 && arg[0] == '@' {
		data, err := os.ReadFile(arg[1:])
		return data, errClient.Wrap(err)
	}
	return []byte(arg), nil
}

func int64Arg(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errClient.New("invalid id %q", arg)
	}
	return v, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printObject(object *pb.Object, revision *pb.Zookie) error {
	out := map[string]interface{}{
		"id":      object.GetId(),
		"user_id": object.GetUserId(),
		"type":    object.GetType(),
	}
	if len(object.GetMetadata()) > 0 {
		out["metadata"] = json.RawMessage(object.GetMetadata())
	}
	if revision.GetToken() != "" {
		out["revision"] = revision.GetToken()
	}
	return printJSON(out)
}

func printEdge(edge *pb.Edge, revision *pb.Zookie) error {
	out := map[string]interface{}{
		"id":        edge.GetId(),
		"user_id":   edge.GetUserId(),
		"from_type": edge.GetFromType(),
		"from_id":   edge.GetFromId(),
		"relation":  edge.GetRelation(),
		"to_type":   edge.GetToType(),
		"to_id":     edge.GetToId(),
	}
	if len(edge.GetMetadata()) > 0 {
		out["metadata"] = json.RawMessage(edge.GetMetadata())
	}
	if revision.GetToken() != "" {
		out["revision"] = revision.GetToken()
	}
	return printJSON(out)
}

func cmdSchemaCreate(cmd *cobra.Command, args []string) error {
	schema, err := jsonArg(args[1])
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewSchemaServiceClient(conn).CreateSchema(ctx, &pb.CreateSchemaRequest{
		TypeName:    args[0],
		Schema:      schema,
		Description: schemaDescription,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printJSON(map[string]interface{}{"id": resp.GetId(), "type_name": resp.GetTypeName()})
}

func cmdSchemaGet(cmd *cobra.Command, args []string) error {
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewSchemaServiceClient(conn).GetSchema(ctx, &pb.GetSchemaRequest{TypeName: args[0]})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printJSON(map[string]interface{}{
		"id":          resp.GetId(),
		"type_name":   resp.GetTypeName(),
		"schema":      json.RawMessage(resp.GetSchema()),
		"description": resp.GetDescription(),
	})
}

func cmdObjectCreate(cmd *cobra.Command, args []string) error {
	meta, err := jsonArg(args[1])
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).CreateObject(ctx, &pb.CreateObjectRequest{
		Type:     args[0],
		Metadata: meta,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printObject(resp.GetObject(), resp.GetRevision())
}

func cmdObjectGet(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	requirement, err := consistencyRequirement()
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).GetObject(ctx, &pb.GetObjectRequest{
		ObjectId:    id,
		Consistency: requirement,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printObject(resp.GetObject(), resp.GetRevision())
}

func cmdObjectUpdate(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	meta, err := jsonArg(args[1])
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).UpdateObject(ctx, &pb.UpdateObjectRequest{
		ObjectId: id,
		Metadata: meta,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printObject(resp.GetObject(), resp.GetRevision())
}

func cmdObjectDelete(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).DeleteObject(ctx, &pb.DeleteObjectRequest{ObjectId: id})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printJSON(map[string]interface{}{"revision": resp.GetRevision().GetToken()})
}

func cmdEdgeCreate(cmd *cobra.Command, args []string) error {
	fromID, err := int64Arg(args[1])
	if err != nil {
		return err
	}
	toID, err := int64Arg(args[4])
	if err != nil {
		return err
	}
	var meta []byte
	if len(args) == 6 {
		meta, err = jsonArg(args[5])
		if err != nil {
			return err
		}
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).CreateEdge(ctx, &pb.CreateEdgeRequest{
		FromType: args[0],
		FromId:   fromID,
		Relation: args[2],
		ToType:   args[3],
		ToId:     toID,
		Metadata: meta,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printEdge(resp.GetEdge(), resp.GetRevision())
}

func cmdEdgeGet(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	requirement, err := consistencyRequirement()
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).GetEdge(ctx, &pb.GetEdgeRequest{
		ObjectId:    id,
		Relation:    args[1],
		Consistency: requirement,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	if err := printEdge(resp.GetEdge(), resp.GetRevision()); err != nil {
		return err
	}
	return printObject(resp.GetTarget(), nil)
}

func cmdEdgeList(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	requirement, err := consistencyRequirement()
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).GetEdges(ctx, &pb.GetEdgesRequest{
		ObjectId:    id,
		Relation:    args[1],
		Consistency: requirement,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	for _, target := range resp.GetTargets() {
		if err := printObject(target, nil); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stdout, "revision: %s\n", resp.GetRevision().GetToken())
	return nil
}

func cmdEdgeUpdate(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	meta, err := jsonArg(args[1])
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).UpdateEdge(ctx, &pb.UpdateEdgeRequest{
		EdgeId:   id,
		Metadata: meta,
	})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printEdge(resp.GetEdge(), resp.GetRevision())
}

func cmdEdgeDelete(cmd *cobra.Command, args []string) error {
	id, err := int64Arg(args[0])
	if err != nil {
		return err
	}
	ctx, cancel, conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = conn.Close() }()

	resp, err := pb.NewGraphServiceClient(conn).DeleteEdge(ctx, &pb.DeleteEdgeRequest{EdgeId: id})
	if err != nil {
		return errClient.Wrap(err)
	}
	return printJSON(map[string]interface{}{"revision": resp.GetRevision().GetToken()})
}
