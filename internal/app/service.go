// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mergington/activities/internal/adapters/registry"
	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service implements the API dependencies for the activity signup system.
type Service struct {
	mu sync.RWMutex

	store *registry.MemStore

	// Configuration
	seed            []roster.Activity
	enforceCapacity bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed replaces the built-in roster used to seed the registry.
func WithSeed(seed []roster.Activity) Option {
	return func(s *Service) {
		if len(seed) > 0 {
			s.seed = seed
		}
	}
}

// WithCapacityEnforcement turns max_participants into a hard signup cap.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seed:   roster.Default(),
		logger: nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start validates the seed roster and initializes the registry.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activity signup service...")

	if err := roster.Validate(s.seed); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	s.store = registry.NewMemStore(ctx, s.seed,
		registry.WithCapacityEnforcement(s.enforceCapacity),
	)
	s.store.PublishGauges(ctx)

	s.started = true
	s.logger.Info(ctx, "activity signup service started",
		logger.Int("activities", s.store.Count(ctx)),
		logger.Int("participants", s.store.ParticipantCount(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)

	return nil
}

// Stop shuts down the service. The registry is in-memory only, so there is
// nothing to flush; state is discarded with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activity signup service stopped")
}

// ListActivities returns every activity with its current participants.
func (s *Service) ListActivities(ctx context.Context) []roster.Activity {
	return s.store.List(ctx)
}

// Signup registers email for the named activity and returns the confirmation
// message. Registry sentinel errors pass through for the API layer to map.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	if err := s.store.Signup(ctx, name, email); err != nil {
		s.recordSignupFailure(ctx, name, email, err)
		return "", err
	}

	metrics.RecordSignup()
	s.store.PublishGauges(ctx)
	s.logger.Info(ctx, "student signed up",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	if err := s.store.Unregister(ctx, name, email); err != nil {
		s.recordUnregisterFailure(ctx, name, email, err)
		return "", err
	}

	metrics.RecordUnregistration()
	s.store.PublishGauges(ctx)
	s.logger.Info(ctx, "student unregistered",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (s *Service) recordSignupFailure(ctx context.Context, name, email string, err error) {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		metrics.RecordUnknownActivity()
	case errors.Is(err, registry.ErrAlreadyRegistered):
		metrics.RecordSignupConflict()
	case errors.Is(err, registry.ErrActivityFull):
		metrics.RecordCapacityRejection()
	}
	s.logger.Debug(ctx, "signup rejected",
		logger.String("activity", name),
		logger.String("email", email),
		logger.Error(err),
	)
}

func (s *Service) recordUnregisterFailure(ctx context.Context, name, email string, err error) {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		metrics.RecordUnknownActivity()
	case errors.Is(err, registry.ErrNotRegistered):
		metrics.RecordUnregisterConflict()
	}
	s.logger.Debug(ctx, "unregister rejected",
		logger.String("activity", name),
		logger.String("email", email),
		logger.Error(err),
	)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":         s.started,
		"enforceCapacity": s.enforceCapacity,
	}

	if s.started {
		stats["activities"] = s.store.Count(ctx)
		stats["participants"] = s.store.ParticipantCount(ctx)
		s.store.PublishGauges(ctx)
	}

	return stats
}
