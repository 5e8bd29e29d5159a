package capture

import (
	"context"
	"image"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
)

type State string

const (
	StateCamera        State = "camera"
	StateLocation      State = "location"
	StateConfirm       State = "confirm"
	StateSuccess       State = "success"
	StateAlreadyMarked State = "already-marked"
)

// Terminal reports whether no further transition is possible in this flow.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateAlreadyMarked
}

// Address shown when the user skips the position request.
const AddressNotAvailable = "Location not available"

// Stream is an exclusively held live video feed.
type Stream interface {
	Frame() (image.Image, error)
	Stop()
}

type Camera interface {
	Open(ctx context.Context) (Stream, error)
}

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator returns a one-shot device position.
type Locator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// View is the externally visible state of one flow.
type View struct {
	State         State                  `json:"state"`
	HasPhoto      bool                   `json:"hasPhoto"`
	Position      *Position              `json:"position,omitempty"`
	Address       string                 `json:"address,omitempty"`
	CameraError   string                 `json:"cameraError,omitempty"`
	LocationError string                 `json:"locationError,omitempty"`
	SubmitError   string                 `json:"submitError,omitempty"`
	Attendance    *attendance.Attendance `json:"attendance,omitempty"`
	Time          time.Time              `json:"time"`
}
