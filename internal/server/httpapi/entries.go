package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mpavlovs/taskvault/internal/common"
)

type createEntryRequest struct {
	Text string `json:"text"`
}

type updateEntryRequest struct {
	Done *bool `json:"done"`
}

func (r *Router) handleList(w http.ResponseWriter, req *http.Request) {
	items, err := r.entries.List(req.Context(), getCallerID(req.Context()))
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (r *Router) handleCreate(w http.ResponseWriter, req *http.Request) {
	var body createEntryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		r.writeError(w, req, common.ErrInvalidInput)
		return
	}

	item, err := r.entries.Create(req.Context(), getCallerID(req.Context()), body.Text)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": item})
}

func (r *Router) handleUpdate(w http.ResponseWriter, req *http.Request) {
	var body updateEntryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Done == nil {
		r.writeError(w, req, common.ErrInvalidInput)
		return
	}

	entryID := chi.URLParam(req, "entryId")
	if err := r.entries.Update(req.Context(), getCallerID(req.Context()), entryID, *body.Done); err != nil {
		r.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) handleDelete(w http.ResponseWriter, req *http.Request) {
	entryID := chi.URLParam(req, "entryId")
	if err := r.entries.Delete(req.Context(), getCallerID(req.Context()), entryID); err != nil {
		r.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) handleAttachment(w http.ResponseWriter, req *http.Request) {
	entryID := chi.URLParam(req, "entryId")
	url, err := r.entries.RequestAttachmentUpload(req.Context(), getCallerID(req.Context()), entryID)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url})
}

// writeError maps service errors to responses. The forbidden body is the
// same bytes whether the entry is missing or owned by someone else.
func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, common.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		r.logger.Error(req.Context(), "request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
