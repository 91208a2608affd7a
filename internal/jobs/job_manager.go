package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"labeling/internal/core/application/staging"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	arenaSweepJob *ArenaSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(arena *staging.Arena, stagingTTL time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		arenaSweepJob: NewArenaSweepJob(arena, stagingTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.arenaSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start arena sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.arenaSweepJob.Stop()
}
