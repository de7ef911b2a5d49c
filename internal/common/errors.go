// Package common defines shared constants and sentinel errors used across
// taskvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Credential verification errors. They stay distinct so the boundary
	// can log the reason, but all of them collapse to a Deny decision
	// and the caller never learns which one fired.
	ErrMissingCredential    = errors.New("missing credential")
	ErrMalformedCredential  = errors.New("malformed credential")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrCredentialExpired    = errors.New("credential expired")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors. ErrForbidden covers both "does not exist" and
	// "owned by someone else"; the distinction must not leave the service.
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
