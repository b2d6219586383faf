// Package jobs provides scheduled background tasks for the requisitions service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes the order status events written to the outbox by
// the command handlers. It runs on OUTBOX_SCHEDULE (six-field cron spec,
// default every five seconds) and skips a tick while the previous run is busy.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, metrics, schedule, cmd, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay errors are logged and counted. The messages stay unsent and are
// picked up again by the next run.
package jobs
