package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cleanupJob *CleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler commands.PurgeDeliveredOrdersCommandHandler,
	cleanupSchedule string,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cleanupJob: NewCleanupJob(purgeHandler, cleanupSchedule, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cleanupJob.Stop()
}
