// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package jwtauth authenticates gRPC requests with RS256 JWTs and attributes
// writes to the token subject.
package jwtauth

import (
	"context"
	"crypto/rsa"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zeebo/errs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Error is the default error class for jwtauth.
var Error = errs.Class("jwtauth")

type contextKey int

const userIDKey contextKey = iota

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user id from the context.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// Verifier checks RS256 signatures and token claims.
type Verifier struct {
	key    *rsa.PublicKey
	issuer string
}

// NewVerifier creates a verifier from a PEM encoded RSA public key.
func NewVerifier(publicKeyPEM []byte, issuer string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, Error.New("invalid public key: %v", err)
	}
	return &Verifier{key: key, issuer: issuer}, nil
}

// NewVerifierFromFile creates a verifier from a PEM file on disk.
func NewVerifierFromFile(path, issuer string) (*Verifier, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return NewVerifier(pem, issuer)
}

// Verify parses and validates a token and returns its subject.
func (v *Verifier) Verify(tokenString string) (subject string, err error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	}, options...)
	if err != nil {
		return "", Error.New("invalid token: %v", err)
	}

	subject, err = token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", Error.New("token subject missing")
	}
	return subject, nil
}

// UnaryServerInterceptor authenticates every unary request with the bearer
// token from the authorization metadata and stores the subject in the
// context.
func (v *Verifier) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		// health and reflection stay reachable without credentials.
		if strings.HasPrefix(info.FullMethod, "/grpc.health.") || strings.HasPrefix(info.FullMethod, "/grpc.reflection.") {
			return handler(ctx, req)
		}
		token, err := bearerToken(ctx)
		if err != nil {
			return nil, err
		}
		subject, err := v.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "UNAUTHENTICATED: invalid credentials")
		}
		return handler(WithUserID(ctx, subject), req)
	}
}

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "UNAUTHENTICATED: missing credentials")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", status.Error(codes.Unauthenticated, "UNAUTHENTICATED: missing credentials")
	}
	token := strings.TrimPrefix(values[0], "Bearer ")
	if token == values[0] || token == "" {
		return "", status.Error(codes.Unauthenticated, "UNAUTHENTICATED: malformed authorization header")
	}
	return token, nil
}
