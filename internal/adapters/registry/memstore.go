package registry

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/pkg/metrics"
)

// MemStore is an in-memory Store guarded by a single RWMutex. The registry
// is a handful of activities, so one lock covers the whole map without
// contention concerns. Participant insertion order is preserved.
type MemStore struct {
	mu sync.RWMutex

	activities map[string]*roster.Activity
	order      []string

	enforceCapacity bool
}

var _ Store = (*MemStore)(nil)

// NewMemStore builds a MemStore seeded with the given activities.
// The context parameter follows the project-wide convention.
func NewMemStore(_ context.Context, seed []roster.Activity, opts ...Option) *MemStore {
	s := &MemStore{
		activities: make(map[string]*roster.Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, a := range seed {
		clone := a.Clone()
		s.activities[clone.Name] = &clone
		s.order = append(s.order, clone.Name)
	}

	return s
}

// List returns a deep copy of every activity in seed order.
func (s *MemStore) List(ctx context.Context) []roster.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]roster.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.activities[name].Clone())
	}
	return out
}

// Get returns a deep copy of a single activity.
func (s *MemStore) Get(ctx context.Context, name string) (roster.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return roster.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the activity's participant list.
func (s *MemStore) Signup(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadyRegistered
	}
	if s.enforceCapacity && len(a.Participants) >= a.MaxParticipants {
		return ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list.
func (s *MemStore) Unregister(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}

// Count returns the number of activities.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// ParticipantCount returns the total participant entries across activities.
func (s *MemStore) ParticipantCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, a := range s.activities {
		total += len(a.Participants)
	}
	return total
}

// PublishGauges pushes the current registry sizes to the metrics package.
func (s *MemStore) PublishGauges(ctx context.Context) {
	metrics.UpdateActivities(s.Count(ctx))
	metrics.UpdateParticipants(s.ParticipantCount(ctx))
}
