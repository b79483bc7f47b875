// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/adapters/registry"
)

// UnregisterHandler handles unregister requests.
type UnregisterHandler struct {
	deps Dependencies
}

// NewUnregisterHandler creates a new unregister handler.
func NewUnregisterHandler(deps Dependencies) *UnregisterHandler {
	return &UnregisterHandler{deps: deps}
}

// HandleUnregister handles DELETE /activities/{name}/unregister?email=...
// requests. The activity name is already URL-decoded by the router.
func (h *UnregisterHandler) HandleUnregister(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
		return
	}

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingEmail)
		return
	}

	msg, err := h.deps.Unregister(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, registry.ErrNotRegistered):
			writeError(w, http.StatusBadRequest, "not_registered", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
