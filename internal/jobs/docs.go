// Package jobs provides scheduled background tasks for the delivery
// matching system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// PendingDispatchJob runs every five seconds and re-attempts automatic
// partner assignment for every delivery job still pending. Jobs that found
// no partner at creation time get matched here once capacity frees up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchPendingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Lack of partner capacity is an expected business outcome and is not
// logged as an error; only infrastructure failures are.
package jobs
