// Package blob issues attachment URLs: short-lived write URLs scoped to a
// single blob, and the long-lived public-read location derived from a blob id.
package blob

import (
	"context"
	"time"
)

// Store is the blob URL issuance capability consumed by the entry service.
type Store interface {
	// IssueWriteURL returns a write-capable URL for exactly one blob,
	// valid for ttl. The URL is handed to the caller and never persisted.
	IssueWriteURL(ctx context.Context, blobID string, ttl time.Duration) (string, error)

	// PublicURL returns the public-read location of a blob. It is a pure
	// function of the blob id and the configured location root; no
	// round-trip is involved.
	PublicURL(blobID string) string
}
