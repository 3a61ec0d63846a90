// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ConsistencyAuditJob - Runs every minute to surface parcels whose state
// disagrees with the payment ledger or the rider roster.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getInconsistenciesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job only reads; query failures are logged and retried on the next
// tick. Audit findings are warnings for operators, not errors, because the
// reconciliation flow writes the parcel and the ledger in one transaction and
// inconsistencies should only appear after manual data changes.
package jobs
