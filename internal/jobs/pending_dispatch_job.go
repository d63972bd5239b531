package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
)

// PendingDispatchJob manages the scheduled assignment sweep over pending
// delivery jobs. Runs every five seconds to match waiting jobs with partners
// that have freed up or come online.
type PendingDispatchJob struct {
	handler commands.DispatchPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingDispatchJob creates a new job for sweeping pending deliveries.
// Uses DispatchPendingCommandHandler to process assignments every five
// seconds.
func NewPendingDispatchJob(handler commands.DispatchPendingCommandHandler, logger *slog.Logger) *PendingDispatchJob {
	return &PendingDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_dispatch_job"),
	}
}

// Start begins the dispatch sweep to run every five seconds.
func (j *PendingDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		assigned, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending dispatch sweep failed", "error", err)
			return
		}

		if assigned > 0 {
			j.logger.InfoContext(ctx, "Pending dispatch sweep assigned jobs", "assigned", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch sweep.
func (j *PendingDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending dispatch job stopped")
}
