// Package httpapi exposes the entry operations over HTTP. The access
// decision runs as middleware before any handler; ownership is enforced
// below, in the entries service.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mpavlovs/taskvault/internal/logging"
	"github.com/mpavlovs/taskvault/internal/server/auth"
	"github.com/mpavlovs/taskvault/internal/server/entries"
)

type Router struct {
	authorizer *auth.Authorizer
	entries    *entries.Service
	logger     logging.Logger
}

func NewRouter(authorizer *auth.Authorizer, svc *entries.Service, logger logging.Logger) http.Handler {
	r := &Router{
		authorizer: authorizer,
		entries:    svc,
		logger:     logger.With("component", "httpapi"),
	}

	mux := chi.NewRouter()

	mux.Get("/health", r.handleHealth)

	mux.Group(func(pr chi.Router) {
		pr.Use(r.authMiddleware)
		pr.Get("/api/v1/entries", r.handleList)
		pr.Post("/api/v1/entries", r.handleCreate)
		pr.Patch("/api/v1/entries/{entryId}", r.handleUpdate)
		pr.Delete("/api/v1/entries/{entryId}", r.handleDelete)
		pr.Post("/api/v1/entries/{entryId}/attachment", r.handleAttachment)
	})

	return mux
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
