// Package smoke exercises a running signup service end to end: it lists the
// roster, signs generated students up, verifies membership, and unregisters
// them again, leaving the roster as it found it.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Students int           // Number of students to generate
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Enable verbose logging
}

// Activity mirrors the record shape returned by GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse mirrors the success envelope of signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse mirrors the error envelope.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Stats holds smoke run statistics.
type Stats struct {
	Activities        int
	StudentsGenerated int
	SignupsOK         int
	SignupsFailed     int
	UnregistersOK     int
	UnregistersFailed int
	StartTime         time.Time
	Duration          time.Duration
}
