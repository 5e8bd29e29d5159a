package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// WebhookRetrier is the part of the webhook dispatcher the jobs drive.
type WebhookRetrier interface {
	RetryFailed(ctx context.Context) error
	Pending() int
}

type WebhookJobs struct {
	retrier WebhookRetrier
}

func NewWebhookJobs(retrier WebhookRetrier) *WebhookJobs {
	return &WebhookJobs{retrier: retrier}
}

func (j *WebhookJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("retry_failed_webhooks", interval, j.RetryFailedWebhooks)
}

// RetryFailedWebhooks re-attempts deliveries parked after a failure.
func (j *WebhookJobs) RetryFailedWebhooks(ctx context.Context) error {
	pending := j.retrier.Pending()
	if pending == 0 {
		return nil
	}

	slog.Info("Cron: retrying failed webhooks", "pending", pending)
	if err := j.retrier.RetryFailed(ctx); err != nil {
		return fmt.Errorf("failed to retry webhooks: %w", err)
	}
	return nil
}
