package registry_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mergington/activities/internal/adapters/registry"
	"github.com/mergington/activities/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func seed() []roster.Activity {
	return []roster.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
	}
}

func TestMemStoreList(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed())

		Convey("When listing activities", func() {
			activities := store.List(ctx)

			Convey("Then all seeded activities should be present in seed order", func() {
				So(activities, ShouldHaveLength, 2)
				So(activities[0].Name, ShouldEqual, "Chess Club")
				So(activities[1].Name, ShouldEqual, "Drama Club")
			})

			Convey("And mutating the result should not affect the store", func() {
				activities[0].Participants = append(activities[0].Participants, "intruder@mergington.edu")

				fresh, err := store.Get(ctx, "Chess Club")
				So(err, ShouldBeNil)
				So(fresh.Participants, ShouldResemble, []string{"michael@mergington.edu"})
			})
		})

		Convey("When getting an unknown activity", func() {
			_, err := store.Get(ctx, "Nonexistent Activity")

			Convey("Then it should return ErrActivityNotFound", func() {
				So(err, ShouldEqual, registry.ErrActivityNotFound)
			})
		})
	})
}

func TestMemStoreSignup(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed())

		Convey("When signing up a new student", func() {
			err := store.Signup(ctx, "Chess Club", "newstudent@mergington.edu")

			Convey("Then it should succeed and append exactly that email", func() {
				So(err, ShouldBeNil)

				a, getErr := store.Get(ctx, "Chess Club")
				So(getErr, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{
					"michael@mergington.edu",
					"newstudent@mergington.edu",
				})
			})
		})

		Convey("When signing up an already registered student", func() {
			err := store.Signup(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then it should fail and leave the list unchanged", func() {
				So(err, ShouldEqual, registry.ErrAlreadyRegistered)

				a, getErr := store.Get(ctx, "Chess Club")
				So(getErr, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{"michael@mergington.edu"})
			})
		})

		Convey("When signing up for an unknown activity", func() {
			err := store.Signup(ctx, "Nonexistent Activity", "student@mergington.edu")

			Convey("Then it should return ErrActivityNotFound and mutate nothing", func() {
				So(err, ShouldEqual, registry.ErrActivityNotFound)
				So(store.ParticipantCount(ctx), ShouldEqual, 1)
			})
		})

		Convey("When one student joins multiple activities", func() {
			So(store.Signup(ctx, "Chess Club", "multisport@mergington.edu"), ShouldBeNil)
			So(store.Signup(ctx, "Drama Club", "multisport@mergington.edu"), ShouldBeNil)

			Convey("Then both participant lists should contain the email", func() {
				chess, err := store.Get(ctx, "Chess Club")
				So(err, ShouldBeNil)
				So(chess.HasParticipant("multisport@mergington.edu"), ShouldBeTrue)

				drama, err := store.Get(ctx, "Drama Club")
				So(err, ShouldBeNil)
				So(drama.HasParticipant("multisport@mergington.edu"), ShouldBeTrue)
			})
		})
	})
}

func TestMemStoreCapacityEnforcement(t *testing.T) {
	Convey("Given a store without capacity enforcement", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed())

		Convey("When signing up past max_participants", func() {
			So(store.Signup(ctx, "Chess Club", "a@mergington.edu"), ShouldBeNil)
			err := store.Signup(ctx, "Chess Club", "b@mergington.edu")

			Convey("Then the signup should still succeed", func() {
				So(err, ShouldBeNil)

				a, getErr := store.Get(ctx, "Chess Club")
				So(getErr, ShouldBeNil)
				So(a.Participants, ShouldHaveLength, 3)
			})
		})
	})

	Convey("Given a store with capacity enforcement", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed(), registry.WithCapacityEnforcement(true))

		Convey("When the activity is at capacity", func() {
			So(store.Signup(ctx, "Chess Club", "a@mergington.edu"), ShouldBeNil)
			err := store.Signup(ctx, "Chess Club", "b@mergington.edu")

			Convey("Then further signups should fail with ErrActivityFull", func() {
				So(err, ShouldEqual, registry.ErrActivityFull)

				a, getErr := store.Get(ctx, "Chess Club")
				So(getErr, ShouldBeNil)
				So(a.Participants, ShouldHaveLength, 2)
			})
		})
	})
}

func TestMemStoreUnregister(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed())

		Convey("When unregistering a registered student", func() {
			err := store.Unregister(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then it should succeed and remove exactly that email", func() {
				So(err, ShouldBeNil)

				a, getErr := store.Get(ctx, "Chess Club")
				So(getErr, ShouldBeNil)
				So(a.Participants, ShouldBeEmpty)
			})
		})

		Convey("When unregistering a student who is not registered", func() {
			err := store.Unregister(ctx, "Chess Club", "notregistered@mergington.edu")

			Convey("Then it should fail and leave the list unchanged", func() {
				So(err, ShouldEqual, registry.ErrNotRegistered)

				a, getErr := store.Get(ctx, "Chess Club")
				So(getErr, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{"michael@mergington.edu"})
			})
		})

		Convey("When unregistering from an unknown activity", func() {
			err := store.Unregister(ctx, "Nonexistent Activity", "student@mergington.edu")

			Convey("Then it should return ErrActivityNotFound", func() {
				So(err, ShouldEqual, registry.ErrActivityNotFound)
			})
		})

		Convey("When a signup is followed by an unregister", func() {
			before, err := store.Get(ctx, "Drama Club")
			So(err, ShouldBeNil)

			So(store.Signup(ctx, "Drama Club", "roundtrip@mergington.edu"), ShouldBeNil)
			So(store.Unregister(ctx, "Drama Club", "roundtrip@mergington.edu"), ShouldBeNil)

			Convey("Then the participant list should be restored exactly", func() {
				after, getErr := store.Get(ctx, "Drama Club")
				So(getErr, ShouldBeNil)
				So(after.Participants, ShouldResemble, before.Participants)
			})
		})
	})
}

func TestMemStoreCounts(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed())

		Convey("Then Count should report the number of activities", func() {
			So(store.Count(ctx), ShouldEqual, 2)
		})

		Convey("Then ParticipantCount should report total participant entries", func() {
			So(store.ParticipantCount(ctx), ShouldEqual, 1)

			So(store.Signup(ctx, "Drama Club", "extra@mergington.edu"), ShouldBeNil)
			So(store.ParticipantCount(ctx), ShouldEqual, 2)
		})
	})
}

func TestMemStoreConcurrentAccess(t *testing.T) {
	Convey("Given a seeded store accessed concurrently", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore(ctx, seed())

		const students = 50

		Convey("When many students sign up for the same activity in parallel", func() {
			var wg sync.WaitGroup
			for i := 0; i < students; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					_ = store.Signup(ctx, "Drama Club", fmt.Sprintf("student%d@mergington.edu", n))
				}(i)
			}
			wg.Wait()

			Convey("Then every signup should land exactly once", func() {
				a, err := store.Get(ctx, "Drama Club")
				So(err, ShouldBeNil)
				So(a.Participants, ShouldHaveLength, students)

				unique := make(map[string]struct{}, len(a.Participants))
				for _, p := range a.Participants {
					unique[p] = struct{}{}
				}
				So(unique, ShouldHaveLength, students)
			})
		})

		Convey("When the same email races to sign up for one activity", func() {
			var wg sync.WaitGroup
			conflicts := make(chan error, students)
			for i := 0; i < students; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := store.Signup(ctx, "Drama Club", "racer@mergington.edu"); err != nil {
						conflicts <- err
					}
				}()
			}
			wg.Wait()
			close(conflicts)

			Convey("Then exactly one signup should win", func() {
				a, err := store.Get(ctx, "Drama Club")
				So(err, ShouldBeNil)

				count := 0
				for _, p := range a.Participants {
					if p == "racer@mergington.edu" {
						count++
					}
				}
				So(count, ShouldEqual, 1)
				So(len(conflicts), ShouldEqual, students-1)
			})
		})
	})
}
