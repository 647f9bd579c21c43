// Package jobs provides scheduled background tasks for the game store.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// 1. CompensationJob - drains the compensation log, deleting identity
// accounts that were left without a matching owner
//
// # Usage
//
//	job := jobs.NewCompensationJob(cfg.CompensationSchedule, compensations, ownerUoWFactory, identity, clock, log)
//	jobManager := jobs.NewJobManager(log, job)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the record stays pending until it has been
// tried compensation.MaxAttempts times. A job that fails to start stops the
// jobs already running.
package jobs
