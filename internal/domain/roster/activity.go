// Package roster contains the activity model and the seed roster.
package roster

// Activity is a named extracurricular offering with a participant list.
// Names are case-sensitive and spaces are significant. MaxParticipants is
// informational capacity; it is not enforced unless the operator opts in.
type Activity struct {
	Name            string   `koanf:"name"`
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// HasParticipant reports whether email is already on the participant list.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate shared participant slices.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
