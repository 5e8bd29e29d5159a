// Package webhook defines the outbound notification contract used by
// every record-creating operation.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

type Endpoint string

const (
	EndpointAttendance        Endpoint = "attendance"
	EndpointLeaveRequest      Endpoint = "leave-request"
	EndpointLeaveStatusUpdate Endpoint = "leave-status-update"
	EndpointWorkUpdate        Endpoint = "work-update"
	EndpointLearningProgress  Endpoint = "learning-progress"
	EndpointAppointment       Endpoint = "appointment"
	EndpointTest              Endpoint = "test"
)

var ErrQueueFull = errors.New("webhook queue is full")

// Result is the outcome of a synchronous send.
type Result struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Delivery is one queued notification.
type Delivery struct {
	Endpoint Endpoint        `json:"endpoint"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
	QueuedAt time.Time       `json:"queuedAt"`
}

// Notifier is the fire-and-forget side channel. Notify never fails the
// caller and never blocks on delivery.
type Notifier interface {
	Notify(ctx context.Context, endpoint Endpoint, payload any)
	Send(ctx context.Context, endpoint Endpoint, payload any) Result
}

// Sender performs a single delivery attempt.
type Sender interface {
	Deliver(ctx context.Context, d Delivery) (statusCode int, err error)
}
