package jobs

import (
	"fmt"
	"log/slog"

	"zapshift/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	consistencyAuditJob *ConsistencyAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getInconsistenciesHandler queries.GetInconsistenciesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		consistencyAuditJob: NewConsistencyAuditJob(getInconsistenciesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.consistencyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start consistency audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.consistencyAuditJob.Stop()
}
