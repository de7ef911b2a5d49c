package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mpavlovs/taskvault/internal/common"
)

func TestExtractSubject_NoVerification(t *testing.T) {
	t.Parallel()

	// The extractor trusts the boundary: a token signed with a key the
	// server has never seen still yields its subject.
	key := newTestKey(t)
	tok := signRS256(t, key, "auth0|u42", time.Hour)

	sub, err := ExtractSubject("Bearer " + tok)
	if err != nil {
		t.Fatalf("ExtractSubject error: %v", err)
	}
	if sub != "auth0|u42" {
		t.Fatalf("subject mismatch: got %q want %q", sub, "auth0|u42")
	}
}

func TestExtractSubject_MissingHeader(t *testing.T) {
	t.Parallel()

	_, err := ExtractSubject("")
	if !errors.Is(err, common.ErrMissingCredential) {
		t.Fatalf("want ErrMissingCredential, got %v", err)
	}
}

func TestExtractSubject_Malformed(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"Bearer garbage", "Basic abc"} {
		_, err := ExtractSubject(header)
		if !errors.Is(err, common.ErrMalformedCredential) {
			t.Fatalf("header %q: want ErrMalformedCredential, got %v", header, err)
		}
	}
}

func TestExtractSubject_EmptySubject(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	tok := signRS256(t, key, "", time.Hour)

	_, err := ExtractSubject("Bearer " + tok)
	if !errors.Is(err, common.ErrMalformedCredential) {
		t.Fatalf("want ErrMalformedCredential, got %v", err)
	}
}
