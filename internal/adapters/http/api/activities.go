// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps Dependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps Dependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleListActivities handles GET /activities requests. The response is a
// JSON object keyed by activity name.
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
		return
	}

	activities := h.deps.ListActivities(r.Context())

	out := make(map[string]ActivityView, len(activities))
	for _, a := range activities {
		out[a.Name] = toActivityView(a)
	}
	writeJSON(w, http.StatusOK, out)
}
