// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package jwtauth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entgraph.io/entgraph/pkg/auth/jwtauth"
)

func newKeyAndVerifier(t *testing.T, issuer string) (*rsa.PrivateKey, *jwtauth.Verifier) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	verifier, err := jwtauth.NewVerifier(pemBytes, issuer)
	require.NoError(t, err)
	return key, verifier
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerify(t *testing.T) {
	key, verifier := newKeyAndVerifier(t, "entgraph-test")

	subject, err := verifier.Verify(signToken(t, key, jwt.MapClaims{
		"iss": "entgraph-test",
		"sub": "alice@example.test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.test", subject)
}

func TestVerifyRejections(t *testing.T) {
	key, verifier := newKeyAndVerifier(t, "entgraph-test")

	// wrong issuer.
	_, err := verifier.Verify(signToken(t, key, jwt.MapClaims{
		"iss": "somebody-else",
		"sub": "alice@example.test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	assert.Error(t, err)

	// expired.
	_, err = verifier.Verify(signToken(t, key, jwt.MapClaims{
		"iss": "entgraph-test",
		"sub": "alice@example.test",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}))
	assert.Error(t, err)

	// missing subject.
	_, err = verifier.Verify(signToken(t, key, jwt.MapClaims{
		"iss": "entgraph-test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	assert.Error(t, err)

	// signed by a different key.
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	_, err = verifier.Verify(signToken(t, otherKey, jwt.MapClaims{
		"iss": "entgraph-test",
		"sub": "alice@example.test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	assert.Error(t, err)

	// not a JWT at all.
	_, err = verifier.Verify("not.a.token")
	assert.Error(t, err)
}
