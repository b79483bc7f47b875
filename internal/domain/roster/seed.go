package roster

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default returns the built-in Mergington High School roster. Each call
// returns fresh slices so a seeded registry owns its participant lists.
func Default() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Art Workshop",
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}

// LoadFile reads a YAML roster file of the form:
//
//	activities:
//	  - name: Chess Club
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [a@x, b@x]
//
// The context parameter follows the project-wide convention and is reserved
// for future use.
func LoadFile(_ context.Context, path string) ([]Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}

	var out struct {
		Activities []Activity `koanf:"activities"`
	}
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}

	if err := Validate(out.Activities); err != nil {
		return nil, err
	}
	return out.Activities, nil
}

// Validate checks roster invariants: at least one activity, unique
// case-sensitive names, positive capacity, and unique participant emails
// within each activity.
func Validate(activities []Activity) error {
	if len(activities) == 0 {
		return fmt.Errorf("%w: no activities defined", ErrInvalidRoster)
	}

	names := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		if a.Name == "" {
			return fmt.Errorf("%w: activity with empty name", ErrInvalidRoster)
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("%w: duplicate activity name %q", ErrInvalidRoster, a.Name)
		}
		names[a.Name] = struct{}{}

		if a.MaxParticipants <= 0 {
			return fmt.Errorf("%w: activity %q must have positive max_participants", ErrInvalidRoster, a.Name)
		}

		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := seen[p]; dup {
				return fmt.Errorf("%w: duplicate participant %q in activity %q", ErrInvalidRoster, p, a.Name)
			}
			seen[p] = struct{}{}
		}
	}
	return nil
}
