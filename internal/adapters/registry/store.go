// Package registry defines the activity registry store interface and errors.
package registry

import (
	"context"

	"github.com/mergington/activities/internal/domain/roster"
)

// Store provides read/write access to the activity registry. The set of
// activities is fixed after seeding; only participant lists mutate.
type Store interface {
	// List returns every activity with its current participants.
	List(ctx context.Context) []roster.Activity

	// Get returns a single activity by exact name.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (roster.Activity, error)

	// Signup appends email to the activity's participant list.
	// Returns ErrActivityNotFound for unknown names and ErrAlreadyRegistered
	// when email is already on the list. The mutation is atomic: on error the
	// list is unchanged.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the activity's participant list.
	// Returns ErrActivityNotFound for unknown names and ErrNotRegistered when
	// email is not on the list.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int

	// ParticipantCount returns the total number of participant entries
	// across all activities.
	ParticipantCount(ctx context.Context) int
}
