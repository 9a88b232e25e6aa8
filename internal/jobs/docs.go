// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order retention.
//
// # Available Jobs
//
// 1. CleanupJob - Permanently removes delivered orders older than the
// retention window. Delivered orders are soft-deleted when they reach the
// terminal status; this job hard-deletes them, line items included, once
// their last update is older than the retention cutoff.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the purge handler
//	jobManager := jobs.NewJobManager(purgeHandler, "0 0 * * *", 7*24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job defaults to "0 0 * * *", once a day at midnight. The
// schedule comes from configuration, so deployments can run the sweep more
// often when delivered volume is high.
//
// # Error Handling
//
// A failed sweep is logged and swallowed; the next scheduled run retries
// the same work because the purge is idempotent over the same cutoff.
package jobs
