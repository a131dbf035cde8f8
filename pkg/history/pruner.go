package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner enforces the history retention policy: delete records older
// than RetentionDays, then trim to MaxRecords. Zero values disable the
// respective rule.
type Pruner struct {
	store         *Store
	retentionDays int
	maxRecords    int
	logger        *slog.Logger
}

// NewPruner creates a pruner for the store.
func NewPruner(store *Store, retentionDays, maxRecords int, logger *slog.Logger) *Pruner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pruner{
		store:         store,
		retentionDays: retentionDays,
		maxRecords:    maxRecords,
		logger:        logger,
	}
}

// Prune runs one pruning cycle and returns the number of records
// removed.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var deleted int64

	if p.retentionDays > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -p.retentionDays)
		n, err := p.store.DeleteBefore(ctx, cutoff)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}

	if p.maxRecords > 0 {
		n, err := p.store.TrimTo(ctx, p.maxRecords)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}

	return deleted, nil
}

// Scheduler runs the pruner on a cron schedule.
type Scheduler struct {
	pruner   *Pruner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler. An empty schedule makes Start a
// no-op.
func NewScheduler(pruner *Pruner, schedule string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		pruner:   pruner,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start begins scheduled pruning and stops it when ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("history prune schedule not configured, skipping scheduler")
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		deleted, err := s.pruner.Prune(ctx)
		if err != nil {
			s.logger.Error("scheduled history pruning failed", "error", err)
			return
		}
		s.logger.Info("scheduled history pruning complete", "deleted", deleted)
	}); err != nil {
		return fmt.Errorf("failed to schedule history pruning: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("history retention scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts scheduled pruning. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
}
