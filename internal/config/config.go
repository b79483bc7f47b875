// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// RosterFile optionally points to a YAML roster replacing the built-in
	// seed activities.
	RosterFile string `koanf:"roster_file"`

	// EnforceCapacity turns max_participants into a hard signup cap.
	// Disabled by default to match the observed behavior of the service
	// this one replaces.
	EnforceCapacity bool `koanf:"enforce_capacity"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8000",
		RosterFile:      "",
		EnforceCapacity: false,
	}
}
