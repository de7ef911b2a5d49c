package auth

import (
	"context"

	"github.com/mpavlovs/taskvault/internal/logging"
)

// DenyPrincipal is the placeholder principal attached to a Deny decision.
// A rejected caller gets no hint about why the credential was refused.
const DenyPrincipal = "user"

// Decision is the coarse-grained policy outcome for one request. Any
// verified identity may invoke any operation; ownership is enforced later,
// per entry.
type Decision struct {
	Allow     bool
	Principal string
}

// Authorizer turns Verifier outcomes into allow/deny decisions at the
// transport boundary.
type Authorizer struct {
	verifier *Verifier
	logger   logging.Logger
}

func NewAuthorizer(v *Verifier, l logging.Logger) *Authorizer {
	return &Authorizer{verifier: v, logger: l.With("component", "authorizer")}
}

// Authorize evaluates the credential once, before any storage access. On
// success the decision carries the verified subject as principal, unchanged.
// On failure the reason is logged but never disclosed to the caller.
func (a *Authorizer) Authorize(ctx context.Context, authHeader string) Decision {
	claims, err := a.verifier.Verify(authHeader)
	if err != nil {
		a.logger.Warn(ctx, "request denied", "reason", err.Error())
		return Decision{Allow: false, Principal: DenyPrincipal}
	}

	return Decision{Allow: true, Principal: claims.Subject}
}
