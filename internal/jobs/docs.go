// Package jobs provides scheduled background tasks for the tea shop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CartCleanupJob - Periodically deletes open carts untouched beyond the
// retention window. Submitted orders are never touched by the sweep.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(removeStaleCartsHandler, retention, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The cleanup job logs failures and retries on the next tick; a failed sweep
// only delays cart removal and never affects request handling.
package jobs
