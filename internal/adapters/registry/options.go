// Package registry defines the activity registry store interface and errors.
package registry

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithCapacityEnforcement turns max_participants into a hard cap on signup.
// Off by default: the original service treats capacity as informational.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *MemStore) {
		s.enforceCapacity = enabled
	}
}
