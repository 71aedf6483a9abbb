package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lateFulfillmentJob *LateFulfillmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factory as a dependency to wire up job execution.
func NewJobManager(
	uowFactory commands.FulfillmentUoWFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lateFulfillmentJob: NewLateFulfillmentJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lateFulfillmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start late fulfillment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lateFulfillmentJob.Stop()
}
