// Package scheduler runs periodic maintenance of the banner inventory.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper switches off banners that can no longer be delivered.
type Sweeper interface {
	SweepBanners(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	entryID cron.EntryID
	sweeper Sweeper
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Scheduler whose overlapping runs are skipped and panics recovered.
func New(sweeper Sweeper, timeout time.Duration, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		cron:    c,
		sweeper: sweeper,
		timeout: timeout,
		logger:  logger,
	}
}

// Schedule installs the banner sweep under a cron spec like "@every 1m" or "*/5 * * * *".
// A previous schedule is replaced.
func (s *Scheduler) Schedule(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}

	entryID, err := s.cron.AddFunc(spec, s.RunSweep)
	if err != nil {
		return fmt.Errorf("adding cron entry %q: %w", spec, err)
	}

	s.entryID = entryID
	s.logger.Info("banner sweep scheduled", "spec", spec)
	return nil
}

// RunSweep executes one sweep bounded by the configured timeout.
func (s *Scheduler) RunSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.sweeper.SweepBanners(ctx)
	if err != nil {
		s.logger.Error("banner sweep failed", "error", err)
		return
	}

	s.logger.Debug("banner sweep finished", "deactivated", n)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
