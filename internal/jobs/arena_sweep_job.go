package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"labeling/internal/core/application/staging"
)

// ArenaSweepJob periodically evicts staged volumes that were generated but
// never committed. Operators regenerate abandoned batches anyway, so expired
// entries are dropped rather than persisted.
type ArenaSweepJob struct {
	arena  *staging.Arena
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewArenaSweepJob creates a job that sweeps the staging arena every minute,
// evicting entries older than ttl.
func NewArenaSweepJob(arena *staging.Arena, ttl time.Duration, logger *slog.Logger) *ArenaSweepJob {
	return &ArenaSweepJob{
		arena:  arena,
		ttl:    ttl,
		cron:   cron.New(),
		logger: logger.With("component", "arena_sweep_job"),
	}
}

// Start begins the sweep job on a one-minute schedule.
func (j *ArenaSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.ttl)

		if evicted := j.arena.Sweep(cutoff); evicted > 0 {
			j.logger.InfoContext(ctx, "Swept expired staged volumes",
				"evicted", evicted, "remaining", j.arena.Len())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Arena sweep job started",
		"ttl", j.ttl.String())
	return nil
}

// Stop stops the sweep job.
func (j *ArenaSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Arena sweep job stopped")
}
