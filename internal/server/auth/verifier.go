// Package auth implements credential verification and the access decision
// made at the transport boundary. Tokens are RS256 JWTs verified against a
// single RSA public key fixed at startup; any other signing algorithm is
// rejected.
package auth

import (
	"crypto/rsa"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpavlovs/taskvault/internal/common"
)

// Claims is the decoded token payload. The subject registered claim carries
// the stable caller identifier.
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier validates bearer credentials against a pinned RSA public key.
type Verifier struct {
	key *rsa.PublicKey
}

func NewVerifier(key *rsa.PublicKey) *Verifier {
	return &Verifier{key: key}
}

// NewVerifierFromPEM parses PEM-encoded key material, which may be either a
// bare RSA public key or an X.509 certificate.
func NewVerifierFromPEM(pemBytes []byte) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, err
	}
	return &Verifier{key: key}, nil
}

// Verify checks an Authorization header value and returns the decoded claims.
//
// Failure modes are distinguishable via errors.Is so the boundary can log
// them differently:
//
//	common.ErrMissingCredential    — no header
//	common.ErrMalformedCredential  — wrong scheme or unparseable token
//	common.ErrUnsupportedAlgorithm — token not signed with RS256
//	common.ErrCredentialExpired    — exp claim in the past
//	common.ErrInvalidSignature     — signature does not match the pinned key
func (v *Verifier) Verify(authHeader string) (*Claims, error) {
	raw, err := stripBearer(authHeader)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		// Algorithm pinning: the key was issued for RS256, so only the
		// RSA family may reach signature verification.
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, common.ErrUnsupportedAlgorithm
		}
		return v.key, nil
	})

	switch {
	case err == nil && token.Valid:
		if claims.Subject == "" {
			return nil, common.ErrMalformedCredential
		}
		return claims, nil
	case errors.Is(err, common.ErrUnsupportedAlgorithm):
		return nil, common.ErrUnsupportedAlgorithm
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, common.ErrMalformedCredential
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrCredentialExpired
	default:
		return nil, common.ErrInvalidSignature
	}
}

// stripBearer extracts the raw token from a "Bearer <token>" header value.
// The scheme keyword is matched case-insensitively.
func stripBearer(authHeader string) (string, error) {
	if authHeader == "" {
		return "", common.ErrMissingCredential
	}

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return "", common.ErrMalformedCredential
	}

	raw := strings.TrimSpace(authHeader[len("bearer "):])
	if raw == "" {
		return "", common.ErrMalformedCredential
	}

	return raw, nil
}
