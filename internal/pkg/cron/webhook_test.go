package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRetrier struct {
	pending int
	calls   int
	err     error
}

func (f *fakeRetrier) RetryFailed(ctx context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeRetrier) Pending() int { return f.pending }

func TestRetryFailedWebhooks(t *testing.T) {
	ctx := context.Background()

	idle := &fakeRetrier{}
	assert.NoError(t, NewWebhookJobs(idle).RetryFailedWebhooks(ctx))
	assert.Zero(t, idle.calls, "nothing parked, nothing retried")

	busy := &fakeRetrier{pending: 3}
	assert.NoError(t, NewWebhookJobs(busy).RetryFailedWebhooks(ctx))
	assert.Equal(t, 1, busy.calls)

	failing := &fakeRetrier{pending: 1, err: errors.New("still down")}
	assert.ErrorContains(t, NewWebhookJobs(failing).RetryFailedWebhooks(ctx), "still down")
}

func TestWebhookJobs_Register(t *testing.T) {
	retrier := &fakeRetrier{pending: 1}
	s := NewScheduler()
	NewWebhookJobs(retrier).RegisterJobs(s, time.Hour)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, retrier.calls)
}
