// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the dispatch sweep,
// which matches paid orders with available delivery partners.
package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchJob *DispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatchHandler commands.DispatchOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob: NewDispatchJob(dispatchHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchJob.Stop()
}
