// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package server

import (
	"context"
	"net"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"entgraph.io/entgraph/graphdb"
	"entgraph.io/entgraph/pkg/auth/jwtauth"
	"entgraph.io/entgraph/pkg/pb"
)

// Error is the default error class for the server package.
var Error = errs.Class("server")

// Config holds the transport configuration.
type Config struct {
	// Address is the host:port to listen on.
	Address string
}

// Server wires the endpoints into a gRPC server with authentication, health
// and reflection.
type Server struct {
	log      *zap.Logger
	config   Config
	grpc     *grpc.Server
	health   *health.Server
	listener net.Listener
}

// New creates a server serving the graph database.
func New(log *zap.Logger, db *graphdb.DB, verifier *jwtauth.Verifier, config Config) (*Server, error) {
	listener, err := net.Listen("tcp", config.Address)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	server := &Server{
		log:      log,
		config:   config,
		health:   health.NewServer(),
		listener: listener,
	}
	server.grpc = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			server.logInterceptor(),
			verifier.UnaryServerInterceptor(),
		),
	)

	pb.RegisterSchemaServiceServer(server.grpc, NewSchemaEndpoint(log.Named("schema"), db))
	pb.RegisterGraphServiceServer(server.grpc, NewGraphEndpoint(log.Named("graph"), db))
	grpc_health_v1.RegisterHealthServer(server.grpc, server.health)
	reflection.Register(server.grpc)

	return server, nil
}

// Addr returns the bound listen address.
func (server *Server) Addr() net.Addr { return server.listener.Addr() }

// Run starts serving and blocks until the context is canceled.
func (server *Server) Run(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	server.log.Info("server started", zap.Stringer("address", server.Addr()))

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		<-ctx.Done()
		server.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		server.grpc.GracefulStop()
		return nil
	})
	group.Go(func() error {
		defer cancel()
		return server.grpc.Serve(server.listener)
	})
	return group.Wait()
}

// Close stops the server immediately.
func (server *Server) Close() error {
	server.grpc.Stop()
	return nil
}

// logInterceptor logs every RPC with its duration and terminal status.
func (server *Server) logInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Stringer("code", status.Code(err)), zap.Error(err))
			server.log.Warn("rpc failed", fields...)
		} else {
			server.log.Debug("rpc", fields...)
		}
		return resp, err
	}
}
