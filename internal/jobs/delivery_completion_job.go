package jobs

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob periodically marks pending shipments as delivered.
// It sweeps placed orders older than the configured cutoff and completes
// their deliveries, standing in for a carrier callback.
type DeliveryCompletionJob struct {
	handler        commands.CompleteDeliveriesCommandHandler
	deliveredAfter time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewDeliveryCompletionJob creates a job that completes deliveries of orders
// at least deliveredAfter old. The sweep runs once a minute.
func NewDeliveryCompletionJob(
	handler commands.CompleteDeliveriesCommandHandler,
	deliveredAfter time.Duration,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler:        handler,
		deliveredAfter: deliveredAfter,
		cron:           cron.New(),
		logger:         logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every minute.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCompleteDeliveriesCommand(j.deliveredAfter)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job misconfigured", "error", cmdErr)
			return
		}

		completed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", handleErr)
			return
		}

		if completed > 0 {
			j.logger.InfoContext(ctx, "Deliveries completed", "count", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every minute)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
