package capture

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/capture"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) capture.CaptureService {
	t.Helper()
	return NewCaptureService(newAttendance(t), fakeGeocoder{address: "Koramangala"}, nil, clock.Fixed(testNow), time.Second)
}

func ptr[T any](v T) *T { return &v }

func TestCaptureService_FullFlow(t *testing.T) {
	ctx := raviCtx()
	svc := newService(t)

	v, err := svc.Start(ctx, capture.StartRequest{Device: "Mozilla/5.0 (iPhone)"})
	require.NoError(t, err)
	assert.Equal(t, capture.StateCamera, v.State)

	v, err = svc.Capture(ctx, capture.FrameRequest{Data: encodePNG(t, splitFrame()), ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, capture.StateLocation, v.State)

	v, err = svc.Locate(ctx, capture.LocateRequest{Latitude: ptr(12.93), Longitude: ptr(77.62)})
	require.NoError(t, err)
	assert.Equal(t, capture.StateConfirm, v.State)
	assert.Equal(t, "Koramangala", v.Address)

	v, err = svc.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, capture.StateSuccess, v.State)
	assert.Equal(t, "Mozilla/5.0 (iPhone)", *v.Attendance.Device)

	v, err = svc.Start(ctx, capture.StartRequest{})
	require.NoError(t, err)
	assert.Equal(t, capture.StateAlreadyMarked, v.State)
}

func TestCaptureService_CameraErrorThenRetry(t *testing.T) {
	ctx := raviCtx()
	svc := newService(t)

	v, err := svc.Start(ctx, capture.StartRequest{CameraError: "NotReadableError"})
	require.NoError(t, err)
	assert.Equal(t, "Camera access denied. Camera is in use by another application.", v.CameraError)

	v, err = svc.RetryCamera(ctx, capture.CameraRequest{})
	require.NoError(t, err)
	assert.Empty(t, v.CameraError)
}

func TestCaptureService_LocationErrorCode(t *testing.T) {
	ctx := raviCtx()
	svc := newService(t)
	_, err := svc.Start(ctx, capture.StartRequest{})
	require.NoError(t, err)
	_, err = svc.Capture(ctx, capture.FrameRequest{Data: encodePNG(t, splitFrame())})
	require.NoError(t, err)

	v, err := svc.Locate(ctx, capture.LocateRequest{ErrorCode: capture.GeoTimeout})
	require.NoError(t, err)
	assert.Equal(t, capture.StateConfirm, v.State)
	assert.Equal(t, "Unable to get your location. Location request timed out.", v.LocationError)
}

func TestCaptureService_RejectsBadFrames(t *testing.T) {
	ctx := raviCtx()
	svc := newService(t)
	_, err := svc.Start(ctx, capture.StartRequest{})
	require.NoError(t, err)

	_, err = svc.Capture(ctx, capture.FrameRequest{Data: []byte("not an image")})
	assert.ErrorIs(t, err, capture.ErrUnsupportedImage)

	_, err = svc.Capture(ctx, capture.FrameRequest{Data: []byte("x"), ContentType: "image/gif"})
	assert.Error(t, err)

	huge := encodePNG(t, image.NewGray(image.Rect(0, 0, 5000, 5000)))
	_, err = svc.Capture(ctx, capture.FrameRequest{Data: huge, ContentType: "image/png"})
	assert.ErrorIs(t, err, capture.ErrFrameTooLarge)

	v, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, capture.StateCamera, v.State)
}

func TestCaptureService_PerUser(t *testing.T) {
	svc := newService(t)
	ravi := raviCtx()
	priya := user.WithIdentity(context.Background(), fixtures.DemoIdentities()[1])

	_, err := svc.Start(ravi, capture.StartRequest{})
	require.NoError(t, err)

	_, err = svc.Status(priya)
	assert.ErrorIs(t, err, capture.ErrNoFlow)

	require.NoError(t, svc.Cancel(ravi))
	_, err = svc.Status(ravi)
	assert.ErrorIs(t, err, capture.ErrNoFlow)
	assert.ErrorIs(t, svc.Cancel(ravi), capture.ErrNoFlow)
}

func TestCaptureService_Unauthenticated(t *testing.T) {
	svc := newService(t)
	_, err := svc.Start(context.Background(), capture.StartRequest{})
	assert.ErrorIs(t, err, user.ErrNotAuthenticated)
}
