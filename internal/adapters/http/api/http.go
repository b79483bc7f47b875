// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/domain/roster"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListActivities returns every activity with its current participants.
	ListActivities(ctx context.Context) []roster.Activity

	// Signup registers email for an activity. Returns the confirmation
	// message or a registry sentinel error.
	Signup(ctx context.Context, name, email string) (string, error)

	// Unregister removes email from an activity. Returns the confirmation
	// message or a registry sentinel error.
	Unregister(ctx context.Context, name, email string) (string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	unregisterHandler *UnregisterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		unregisterHandler: NewUnregisterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/activities", MetricsMiddleware(s.activitiesHandler.HandleListActivities, "activities"))
	mux.HandleFunc("/activities/", s.routeActivityAction)
}

// routeActivityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The activity name segment arrives already
// URL-decoded on r.URL.Path, so space-containing names work as-is.
func (s *Server) routeActivityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")

	if name, ok := strings.CutSuffix(rest, "/signup"); ok && name != "" {
		MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			s.signupHandler.HandleSignup(w, r, name)
		}, "signup")(w, r)
		return
	}

	if name, ok := strings.CutSuffix(rest, "/unregister"); ok && name != "" {
		MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			s.unregisterHandler.HandleUnregister(w, r, name)
		}, "unregister")(w, r)
		return
	}

	http.NotFound(w, r)
}

// ActivityView mirrors the record shape returned by GET /activities.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(a roster.Activity) ActivityView {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// messageResponse is the success envelope for signup and unregister.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse keeps the human-readable detail string clients assert on.
type errorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	detail := http.StatusText(status)
	if err != nil {
		detail = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Detail: detail})
}
