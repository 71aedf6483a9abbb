package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LateFulfillmentJob periodically scans for fulfillments that missed their
// estimated delivery date and reports them. Runs every minute.
type LateFulfillmentJob struct {
	uowFactory commands.FulfillmentUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewLateFulfillmentJob creates a new job for detecting late fulfillments.
// Reads the late aggregates through the fulfillment repository.
func NewLateFulfillmentJob(uowFactory commands.FulfillmentUoWFactory, logger *slog.Logger) *LateFulfillmentJob {
	return &LateFulfillmentJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "late_fulfillment_job"),
	}
}

// Start begins the late fulfillment job to run every minute.
func (j *LateFulfillmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		repo := j.uowFactory.Create().FulfillmentRepository()

		late, err := repo.GetAllLate(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Late fulfillment job failed", "error", err)
			return
		}

		for _, f := range late {
			j.logger.WarnContext(ctx, "Fulfillment is past its delivery estimate",
				"fulfillmentId", f.ID().String(),
				"orderNumber", f.OrderNumber(),
				"status", f.Status().String(),
				"trackingNumber", f.TrackingNumber(),
				"estimatedDeliveryAt", f.EstimatedDeliveryAt(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late fulfillment job started (running every minute)")
	return nil
}

// Stop stops the late fulfillment job.
func (j *LateFulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Late fulfillment job stopped")
}
