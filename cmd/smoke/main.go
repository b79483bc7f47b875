package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mergington/activities/internal/smoke"
	"github.com/mergington/activities/pkg/logger"
)

// Default configuration constants.
const (
	defaultStudents = 50
	defaultWorkers  = 4
	defaultTimeout  = 10 * time.Second
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8000", "Base URL of the service")
		students = flag.Int("students", defaultStudents, "Number of students to generate")
		workers  = flag.Int("workers", defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	config := &smoke.Config{
		BaseURL:  *baseURL,
		Students: *students,
		Workers:  *workers,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	ctx := context.Background()
	if err := smoke.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "smoke test failed", logger.Error(err))
		os.Exit(1)
	}
}
