// Package scheduler wires up the cron job that periodically re-runs the
// full scrape so the persisted document stays fresh.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron around a single run function.
type Scheduler struct {
	cron *cron.Cron
	run  func(context.Context)
	spec string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(intervalHours int, run func(context.Context)) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		run:  run,
		spec: fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one scrape
// immediately so the document is populated without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("⏰ Cron started with spec %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.run(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("⏰ Cron stopped")
}
