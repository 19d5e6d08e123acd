// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// KitchenJob claims the oldest pending order on every tick, moving it to the
// configured status. It is disabled by default and turned on with
// kitchen.enabled in the service configuration.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	kitchenJob, err := jobs.NewKitchenJob(claimHandler, "*/5 * * * * *", order.InProgress, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(kitchenJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
//
// # Error Handling
//
// An empty queue is an expected outcome and is only counted in metrics.
// Every other failure is logged. Failed job starts stop any already running jobs.
package jobs
