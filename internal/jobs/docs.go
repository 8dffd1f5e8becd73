// Package jobs provides scheduled background tasks for the ordering
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance that must never touch live state.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to remove sessions idle past the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cleanupHandler, sessionTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the "@every 1m" schedule: abandoned carts cost only
// memory, so a minute of slack is plenty.
package jobs
