package jobs

import (
	"context"
	"log/slog"

	"zapshift/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ConsistencyAuditJob periodically scans for parcels whose persisted state
// disagrees with the payment ledger or the rider roster. Findings are logged
// for operator follow-up; the job never mutates state.
type ConsistencyAuditJob struct {
	handler queries.GetInconsistenciesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewConsistencyAuditJob creates a job that audits parcel consistency every
// minute.
func NewConsistencyAuditJob(handler queries.GetInconsistenciesQueryHandler, logger *slog.Logger) *ConsistencyAuditJob {
	return &ConsistencyAuditJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "consistency_audit_job"),
	}
}

// Start begins the consistency audit job to run every minute.
func (j *ConsistencyAuditJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		findings, err := j.handler.Handle(ctx, queries.NewGetInconsistenciesQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Consistency audit failed", "error", err)
			return
		}

		for _, finding := range findings {
			j.logger.WarnContext(ctx, "Parcel state inconsistency detected",
				"parcelId", finding.ParcelID.String(),
				"trackingId", finding.TrackingID,
				"kind", finding.Kind,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consistency audit job started (running every minute)")
	return nil
}

// Stop stops the consistency audit job.
func (j *ConsistencyAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Consistency audit job stopped")
}
