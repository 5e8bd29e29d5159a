// Package notification delivers outbound webhook calls in the background.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/webhook"
)

type Config struct {
	WorkerCount int           // default: 2
	QueueSize   int           // default: 256
	MaxAttempts int           // default: 5
	Timeout     time.Duration // per delivery, default: 10s
}

// Dispatcher implements webhook.Notifier. Notify only enqueues; workers
// deliver, and failures wait in a retry list for RetryFailed.
type Dispatcher struct {
	sender webhook.Sender
	config Config

	queue chan webhook.Delivery
	// closeMu makes the closed check and the enqueue atomic with Close.
	closeMu sync.RWMutex
	closed  bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	mu    sync.Mutex
	retry []webhook.Delivery
}

func NewDispatcher(sender webhook.Sender, cfg Config) *Dispatcher {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	d := &Dispatcher{
		sender: sender,
		config: cfg,
		queue:  make(chan webhook.Delivery, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}
	for i := 0; i < cfg.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	slog.Info("webhook dispatcher started", "workers", cfg.WorkerCount, "queue_size", cfg.QueueSize)
	return d
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for {
		select {
		case del := <-d.queue:
			d.attempt(del)
		case <-d.stopCh:
			for {
				select {
				case del := <-d.queue:
					d.attempt(del)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, del webhook.Delivery) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()
	return d.sender.Deliver(ctx, del)
}

// attempt makes one delivery and parks failures for retry.
func (d *Dispatcher) attempt(del webhook.Delivery) {
	del.Attempts++
	if _, err := d.deliver(context.Background(), del); err != nil {
		d.park(del, err)
	}
}

func (d *Dispatcher) park(del webhook.Delivery, err error) {
	if del.Attempts >= d.config.MaxAttempts {
		slog.Error("webhook delivery abandoned", "endpoint", del.Endpoint, "attempts", del.Attempts, "error", err)
		return
	}
	slog.Warn("webhook delivery failed", "endpoint", del.Endpoint, "attempts", del.Attempts, "error", err)
	d.mu.Lock()
	d.retry = append(d.retry, del)
	d.mu.Unlock()
}

func newDelivery(endpoint webhook.Endpoint, payload any) (webhook.Delivery, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return webhook.Delivery{}, fmt.Errorf("encode %s payload: %w", endpoint, err)
	}
	return webhook.Delivery{Endpoint: endpoint, Payload: raw, QueuedAt: time.Now().UTC()}, nil
}

// Notify implements webhook.Notifier. It never blocks and never fails the
// caller; problems are logged.
func (d *Dispatcher) Notify(ctx context.Context, endpoint webhook.Endpoint, payload any) {
	del, err := newDelivery(endpoint, payload)
	if err != nil {
		slog.Error("webhook payload dropped", "endpoint", endpoint, "error", err)
		return
	}

	d.closeMu.RLock()
	defer d.closeMu.RUnlock()
	if d.closed {
		slog.Warn("webhook dispatcher closed, notification dropped", "endpoint", endpoint)
		return
	}

	select {
	case d.queue <- del:
	default:
		slog.Error("webhook notification dropped", "endpoint", endpoint, "error", webhook.ErrQueueFull)
	}
}

// Send implements webhook.Notifier with one synchronous attempt.
func (d *Dispatcher) Send(ctx context.Context, endpoint webhook.Endpoint, payload any) webhook.Result {
	del, err := newDelivery(endpoint, payload)
	if err != nil {
		return webhook.Result{Error: err.Error()}
	}
	del.Attempts = 1

	status, err := d.deliver(ctx, del)
	if err != nil {
		return webhook.Result{StatusCode: status, Error: err.Error()}
	}
	return webhook.Result{Success: true, StatusCode: status}
}

// RetryFailed re-attempts every parked delivery once. It is meant to run
// from a cron job.
func (d *Dispatcher) RetryFailed(ctx context.Context) error {
	d.mu.Lock()
	pending := d.retry
	d.retry = nil
	d.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	failed := 0
	for i, del := range pending {
		if ctx.Err() != nil {
			d.mu.Lock()
			d.retry = append(d.retry, pending[i:]...)
			d.mu.Unlock()
			return ctx.Err()
		}
		del.Attempts++
		if _, err := d.deliver(ctx, del); err != nil {
			failed++
			d.park(del, err)
		}
	}

	slog.Info("webhook retry pass", "retried", len(pending), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d webhook deliveries still failing", failed, len(pending))
	}
	return nil
}

// Pending reports how many deliveries wait for retry.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.retry)
}

// Close stops accepting work and waits for queued deliveries to finish.
// Anything enqueued before Close returns is delivered or parked.
func (d *Dispatcher) Close() {
	d.closeMu.Lock()
	if !d.closed {
		d.closed = true
		close(d.stopCh)
	}
	d.closeMu.Unlock()
	d.wg.Wait()
}
