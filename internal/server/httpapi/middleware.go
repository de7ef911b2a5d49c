package httpapi

import (
	"context"
	"net/http"

	"github.com/mpavlovs/taskvault/internal/common"
	"github.com/mpavlovs/taskvault/internal/server/auth"
)

type contextKey string

const callerIDContextKey contextKey = "callerID"

// authMiddleware evaluates the access decision once per request, before any
// storage access. A Deny short-circuits with a uniform 401 body that reveals
// nothing about why the credential was rejected. On Allow, the caller
// identity is extracted from the credential and carried in the context.
func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get(common.AuthorizationHeaderName)

		decision := r.authorizer.Authorize(req.Context(), header)
		if !decision.Allow {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		callerID, err := auth.ExtractSubject(header)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		ctx := context.WithValue(req.Context(), callerIDContextKey, callerID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func getCallerID(ctx context.Context) string {
	if v := ctx.Value(callerIDContextKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
