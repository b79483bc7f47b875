// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/adapters/registry"
)

// SignupHandler handles signup requests.
type SignupHandler struct {
	deps Dependencies
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps Dependencies) *SignupHandler {
	return &SignupHandler{deps: deps}
}

// HandleSignup handles POST /activities/{name}/signup?email=... requests.
// The activity name is already URL-decoded by the router.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
		return
	}

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingEmail)
		return
	}

	msg, err := h.deps.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, registry.ErrAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "already_registered", err)
		case errors.Is(err, registry.ErrActivityFull):
			writeError(w, http.StatusBadRequest, "activity_full", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
