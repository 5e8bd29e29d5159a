package capture

import "context"

// CaptureService drives one capture flow per authenticated user, with the
// client supplying camera frames and positions.
type CaptureService interface {
	Start(ctx context.Context, req StartRequest) (View, error)
	Status(ctx context.Context) (View, error)
	RetryCamera(ctx context.Context, req CameraRequest) (View, error)
	Capture(ctx context.Context, req FrameRequest) (View, error)
	Locate(ctx context.Context, req LocateRequest) (View, error)
	SkipLocation(ctx context.Context) (View, error)
	Retry(ctx context.Context, req CameraRequest) (View, error)
	Submit(ctx context.Context) (View, error)
	Cancel(ctx context.Context) error
}
