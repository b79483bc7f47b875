package smoke

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/activities/pkg/logger"
)

// enrollment pairs a generated student with the activity they join.
type enrollment struct {
	Activity string
	Email    string
}

// Run executes the complete smoke test against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	log := logger.Get()
	log.Info(ctx, "starting signup smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.Students),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
	)

	c := newClient(config.BaseURL, config.Timeout)

	// Step 1: Check service health
	if err := c.checkHealth(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the roster and snapshot participant counts
	before, err := c.listActivities(ctx)
	if err != nil {
		return fmt.Errorf("roster fetch failed: %w", err)
	}
	if len(before) == 0 {
		return fmt.Errorf("service returned an empty roster")
	}
	stats.Activities = len(before)

	// Step 3: Generate enrollments across the roster
	enrollments := generateEnrollments(before, config.Students)
	stats.StudentsGenerated = len(enrollments)

	// Step 4: Sign everyone up concurrently
	if err := runPhase(ctx, config, enrollments, c.signup, &stats.SignupsOK, &stats.SignupsFailed); err != nil {
		return fmt.Errorf("signup phase failed: %w", err)
	}

	// Step 5: Verify membership
	if err := verifyMembership(ctx, c, enrollments, true); err != nil {
		return fmt.Errorf("post-signup verification failed: %w", err)
	}

	// Step 6: Unregister everyone again
	if err := runPhase(ctx, config, enrollments, c.unregister, &stats.UnregistersOK, &stats.UnregistersFailed); err != nil {
		return fmt.Errorf("unregister phase failed: %w", err)
	}

	// Step 7: Verify the roster was restored
	if err := verifyMembership(ctx, c, enrollments, false); err != nil {
		return fmt.Errorf("post-unregister verification failed: %w", err)
	}
	if err := verifyRestored(ctx, c, before); err != nil {
		return fmt.Errorf("roster restore verification failed: %w", err)
	}

	stats.Duration = time.Since(stats.StartTime)
	report(ctx, stats)
	return nil
}

// generateEnrollments spreads generated students round-robin across the
// activities. Emails are uuid-derived so repeated runs never collide with
// seed participants or with each other.
func generateEnrollments(roster map[string]Activity, students int) []enrollment {
	names := make([]string, 0, len(roster))
	for name := range roster {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]enrollment, 0, students)
	for i := 0; i < students; i++ {
		out = append(out, enrollment{
			Activity: names[i%len(names)],
			Email:    fmt.Sprintf("smoke-%s@mergington.edu", uuid.NewString()[:8]),
		})
	}
	return out
}

// mutateFunc matches client.signup and client.unregister.
type mutateFunc func(ctx context.Context, activity, email string) (int, string, error)

// runPhase applies op to every enrollment using a bounded worker pool.
func runPhase(ctx context.Context, config *Config, enrollments []enrollment, op mutateFunc, okCount, failCount *int) error {
	var (
		ok     atomic.Int64
		failed atomic.Int64
		wg     sync.WaitGroup
	)

	work := make(chan enrollment, len(enrollments))
	for _, e := range enrollments {
		work <- e
	}
	close(work)

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range work {
				status, detail, err := op(ctx, e.Activity, e.Email)
				if err != nil || status != 200 {
					failed.Add(1)
					if config.Verbose {
						logger.Get().Warn(ctx, "mutation failed",
							logger.String("activity", e.Activity),
							logger.String("email", e.Email),
							logger.Int("status", status),
							logger.String("detail", detail),
							logger.Error(err),
						)
					}
					continue
				}
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	*okCount = int(ok.Load())
	*failCount = int(failed.Load())

	if failed.Load() > 0 {
		return fmt.Errorf("%d of %d mutations failed", failed.Load(), len(enrollments))
	}
	return nil
}

// verifyMembership checks that every enrollment is present (or absent) in the
// current roster.
func verifyMembership(ctx context.Context, c *client, enrollments []enrollment, wantPresent bool) error {
	roster, err := c.listActivities(ctx)
	if err != nil {
		return err
	}

	for _, e := range enrollments {
		a, ok := roster[e.Activity]
		if !ok {
			return fmt.Errorf("activity %q disappeared from the roster", e.Activity)
		}

		present := false
		for _, p := range a.Participants {
			if p == e.Email {
				present = true
				break
			}
		}
		if present != wantPresent {
			return fmt.Errorf("activity %q: expected present=%v for %s", e.Activity, wantPresent, e.Email)
		}
	}
	return nil
}

// verifyRestored checks that participant counts match the pre-run snapshot.
func verifyRestored(ctx context.Context, c *client, before map[string]Activity) error {
	after, err := c.listActivities(ctx)
	if err != nil {
		return err
	}

	for name, b := range before {
		a, ok := after[name]
		if !ok {
			return fmt.Errorf("activity %q disappeared from the roster", name)
		}
		if len(a.Participants) != len(b.Participants) {
			return fmt.Errorf("activity %q: participant count %d, want %d",
				name, len(a.Participants), len(b.Participants))
		}
	}
	return nil
}

func report(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "smoke test completed",
		logger.Int("activities", stats.Activities),
		logger.Int("students", stats.StudentsGenerated),
		logger.Int("signupsOK", stats.SignupsOK),
		logger.Int("unregistersOK", stats.UnregistersOK),
		logger.String("duration", stats.Duration.String()),
	)
}
