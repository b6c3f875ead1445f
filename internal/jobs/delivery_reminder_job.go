package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryReminderJob nudges buyers whose shipped orders have slipped past
// their estimated delivery time. The job only reads and notifies; it never
// mutates order state.
type DeliveryReminderJob struct {
	undeliveredOrders queries.GetUndeliveredOrdersQueryHandler
	notifier          ports.Notifier
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewDeliveryReminderJob creates a job that checks for overdue shipped orders
// every five minutes.
func NewDeliveryReminderJob(
	undeliveredOrders queries.GetUndeliveredOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		undeliveredOrders: undeliveredOrders,
		notifier:          notifier,
		cron:              cron.New(),
		logger:            logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job on a five-minute schedule.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running every five minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}

func (j *DeliveryReminderJob) run() {
	ctx := context.Background()
	now := time.Now()

	orders, err := j.undeliveredOrders.Handle(ctx, queries.NewGetUndeliveredOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery reminder job failed to load orders", "error", err)
		return
	}

	for _, o := range orders {
		if o.Status != "shipped" {
			continue
		}
		if o.EstimatedDeliveryAt == nil || o.EstimatedDeliveryAt.After(now) {
			continue
		}

		payload := map[string]any{
			"order_id":              o.ID.String(),
			"estimated_delivery_at": o.EstimatedDeliveryAt,
		}
		if err := j.notifier.Notify(ctx, o.BuyerID, "delivery.reminder", payload); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder notification failed",
				"order_id", o.ID.String(), "error", err)
		}
	}
}
