package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CleanupJob permanently removes delivered orders that left the retention
// window. Runs on a cron schedule, daily at midnight by default.
type CleanupJob struct {
	handler   commands.PurgeDeliveredOrdersCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCleanupJob creates a job that purges delivered orders older than the
// retention window on the given cron schedule.
func NewCleanupJob(
	handler commands.PurgeDeliveredOrdersCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *CleanupJob {
	return &CleanupJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "cleanup_job"),
	}
}

// Start schedules the cleanup job. Returns an error when the cron
// expression does not parse.
func (j *CleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cleanup job started",
		"schedule", j.schedule,
		"retention", j.retention,
	)
	return nil
}

// Stop stops the cleanup job.
func (j *CleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cleanup job stopped")
}

func (j *CleanupJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewPurgeDeliveredOrdersCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cleanup job misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cleanup job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Cleanup job finished", "removed", removed)
}
