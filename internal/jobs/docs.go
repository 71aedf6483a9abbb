// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. LateFulfillmentJob - Runs every minute to detect undelivered shipments past their estimated delivery date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the unit of work factory
//	jobManager := jobs.NewJobManager(uowFactory, logger)
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
// The late fulfillment job uses the cron expression "0 * * * * *" which means
// it runs at the top of every minute. Lateness is derived from the stored
// delivery estimate, so a finer schedule would add load without adding signal.
//
// # Error Handling
//
// - Repository failures are logged and the tick is skipped
// - Failed job starts will stop any already running jobs
package jobs
