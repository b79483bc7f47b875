package smoke

import "os"

// ShowHelp prints usage information for the smoke test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Activity Signup Smoke Test
==========================

Exercises a running activity signup service: signs generated students up,
verifies membership, and unregisters them again, leaving the roster as it
found it.

Usage:
  go run cmd/smoke/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -students int
        Number of students to generate (default 50)
  -workers int
        Number of concurrent workers (default 4)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Smoke test a local server
  go run cmd/smoke/main.go

  # Heavier run against a remote host
  go run cmd/smoke/main.go -url http://signups.mergington.edu -students 500 -workers 16
`)
}
