package roster_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mergington/activities/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultRoster(t *testing.T) {
	Convey("Given the default roster", t, func() {
		activities := roster.Default()

		Convey("Then it should contain the known activities", func() {
			names := make(map[string]roster.Activity, len(activities))
			for _, a := range activities {
				names[a.Name] = a
			}

			So(names, ShouldContainKey, "Chess Club")
			So(names, ShouldContainKey, "Soccer Team")
			So(names, ShouldContainKey, "Programming Class")
			So(names, ShouldContainKey, "Art Workshop")
			So(names, ShouldContainKey, "Drama Club")

			Convey("And the seed participants should be present", func() {
				So(names["Chess Club"].HasParticipant("michael@mergington.edu"), ShouldBeTrue)
				So(names["Art Workshop"].HasParticipant("mia@mergington.edu"), ShouldBeTrue)
			})
		})

		Convey("Then it should pass validation", func() {
			So(roster.Validate(activities), ShouldBeNil)
		})

		Convey("Then each call should return independent slices", func() {
			other := roster.Default()
			activities[0].Participants[0] = "mutated@mergington.edu"
			So(other[0].Participants[0], ShouldEqual, "michael@mergington.edu")
		})
	})
}

func TestActivityHelpers(t *testing.T) {
	Convey("Given an activity", t, func() {
		a := roster.Activity{
			Name:            "Chess Club",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		}

		Convey("When checking participants", func() {
			So(a.HasParticipant("michael@mergington.edu"), ShouldBeTrue)
			So(a.HasParticipant("absent@mergington.edu"), ShouldBeFalse)
		})

		Convey("When cloning", func() {
			clone := a.Clone()
			clone.Participants[0] = "other@mergington.edu"

			Convey("Then the original participant list should be untouched", func() {
				So(a.Participants[0], ShouldEqual, "michael@mergington.edu")
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a roster YAML file", t, func() {
		ctx := context.Background()

		write := func(content string) string {
			dir := t.TempDir()
			path := filepath.Join(dir, "roster.yaml")
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			return path
		}

		Convey("When loading a valid file", func() {
			path := write(`
activities:
  - name: Robotics Club
    description: Build and program robots
    schedule: Wednesdays, 3:30 PM - 5:00 PM
    max_participants: 8
    participants:
      - lucas@mergington.edu
`)
			activities, err := roster.LoadFile(ctx, path)

			Convey("Then it should parse the activities", func() {
				So(err, ShouldBeNil)
				So(activities, ShouldHaveLength, 1)
				So(activities[0].Name, ShouldEqual, "Robotics Club")
				So(activities[0].MaxParticipants, ShouldEqual, 8)
				So(activities[0].Participants, ShouldResemble, []string{"lucas@mergington.edu"})
			})
		})

		Convey("When loading a file with duplicate activity names", func() {
			path := write(`
activities:
  - name: Chess Club
    max_participants: 12
  - name: Chess Club
    max_participants: 10
`)
			_, err := roster.LoadFile(ctx, path)

			Convey("Then it should fail validation", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "duplicate activity name")
			})
		})

		Convey("When loading a file with duplicate participants", func() {
			path := write(`
activities:
  - name: Chess Club
    max_participants: 12
    participants:
      - same@mergington.edu
      - same@mergington.edu
`)
			_, err := roster.LoadFile(ctx, path)

			Convey("Then it should fail validation", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "duplicate participant")
			})
		})

		Convey("When loading a file with non-positive capacity", func() {
			path := write(`
activities:
  - name: Chess Club
    max_participants: 0
`)
			_, err := roster.LoadFile(ctx, path)

			Convey("Then it should fail validation", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := roster.LoadFile(ctx, filepath.Join(t.TempDir(), "missing.yaml"))

			Convey("Then it should return a load error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
