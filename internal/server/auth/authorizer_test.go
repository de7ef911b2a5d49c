package auth

import (
	"context"
	"testing"
	"time"

	"github.com/mpavlovs/taskvault/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (n nopLogger) With(args ...any) logging.Logger                  { return n }

func TestAuthorize_Allow_PropagatesSubject(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	a := NewAuthorizer(NewVerifier(&key.PublicKey), nopLogger{})

	tok := signRS256(t, key, "auth0|alice", time.Hour)

	d := a.Authorize(context.Background(), "Bearer "+tok)
	if !d.Allow {
		t.Fatal("expected Allow decision")
	}
	if d.Principal != "auth0|alice" {
		t.Fatalf("principal mismatch: got %q want %q", d.Principal, "auth0|alice")
	}
}

func TestAuthorize_Deny_PlaceholderPrincipal(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	otherKey := newTestKey(t)
	a := NewAuthorizer(NewVerifier(&key.PublicKey), nopLogger{})

	// Every verifier failure mode yields the same external decision.
	headers := []string{
		"",
		"Basic abc",
		"Bearer not.a.jwt",
		"Bearer " + signRS256(t, otherKey, "mallory", time.Hour),
		"Bearer " + signRS256(t, key, "alice", -time.Minute),
	}

	for _, h := range headers {
		d := a.Authorize(context.Background(), h)
		if d.Allow {
			t.Fatalf("header %q: expected Deny", h)
		}
		if d.Principal != DenyPrincipal {
			t.Fatalf("header %q: principal %q, want placeholder %q", h, d.Principal, DenyPrincipal)
		}
	}
}
