// Package jobs provides scheduled background tasks for the labeling engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the label lifecycle needs.
//
// # Available Jobs
//
// 1. ArenaSweepJob - Runs every minute to evict staged volume batches that
// were generated but never committed within the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the staging arena and its TTL
//	jobManager := jobs.NewJobManager(arena, stagingTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sweep job only logs when it actually evicted something
// - Failed job starts will stop any already running jobs
package jobs
