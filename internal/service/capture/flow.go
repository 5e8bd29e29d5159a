package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/capture"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/geocode"
	"github.com/grofast/portal-backend-go/internal/pkg/storage"
)

// DefaultLocationTimeout bounds a single position request.
const DefaultLocationTimeout = 15 * time.Second

const submitErrorMessage = "Failed to mark attendance. Please try again."

// releasingStream stops the underlying stream at most once.
type releasingStream struct {
	capture.Stream
	once sync.Once
}

func (s *releasingStream) Stop() {
	s.once.Do(s.Stream.Stop)
}

// FlowDeps are the collaborators of one flow. Photos and Geocoder may be nil.
type FlowDeps struct {
	Camera          capture.Camera
	Locator         capture.Locator
	Geocoder        geocode.Geocoder
	Attendance      attendance.AttendanceService
	Photos          storage.FileStorage
	Now             clock.Clock
	LocationTimeout time.Duration
}

// Flow is one user's attendance capture: camera, location, confirm, then
// success. It is safe for concurrent use; transitions are serialised.
type Flow struct {
	deps   FlowDeps
	device string

	mu       sync.Mutex
	state    capture.State
	stream   *releasingStream
	photo    []byte
	position *capture.Position
	address  string

	cameraErr   string
	locationErr string
	submitErr   string
	record      *attendance.Attendance

	// gen invalidates in-flight position requests on retry, skip and close.
	gen          int
	cancelLocate context.CancelFunc
	closed       bool
}

func NewFlow(deps FlowDeps, device string) *Flow {
	if deps.Now == nil {
		deps.Now = clock.System(nil)
	}
	if deps.LocationTimeout <= 0 {
		deps.LocationTimeout = DefaultLocationTimeout
	}
	return &Flow{deps: deps, device: device, state: capture.StateCamera}
}

func (f *Flow) viewLocked() capture.View {
	v := capture.View{
		State:         f.state,
		HasPhoto:      len(f.photo) > 0,
		Address:       f.address,
		CameraError:   f.cameraErr,
		LocationError: f.locationErr,
		SubmitError:   f.submitErr,
		Attendance:    f.record,
		Time:          f.deps.Now(),
	}
	if f.position != nil {
		p := *f.position
		v.Position = &p
	}
	return v
}

// View returns the current state.
func (f *Flow) View() capture.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewLocked()
}

func (f *Flow) guardLocked(want capture.State) error {
	if f.closed {
		return capture.ErrFlowClosed
	}
	if f.state != want {
		return fmt.Errorf("%w: %s", capture.ErrInvalidTransition, f.state)
	}
	return nil
}

func (f *Flow) releaseLocked() {
	if f.stream != nil {
		f.stream.Stop()
		f.stream = nil
	}
}

func (f *Flow) openCameraLocked(ctx context.Context) {
	f.cameraErr = ""
	stream, err := f.deps.Camera.Open(ctx)
	if err != nil {
		f.cameraErr = capture.CameraMessage(err)
		slog.Warn("camera unavailable", "error", err)
		return
	}
	f.stream = &releasingStream{Stream: stream}
}

// Mount enters already-marked when today's attendance is present, otherwise
// the camera state with the camera opened.
func (f *Flow) Mount(ctx context.Context) (capture.View, error) {
	today, err := f.deps.Attendance.GetToday(ctx)
	if err != nil {
		return capture.View{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return capture.View{}, capture.ErrFlowClosed
	}
	f.releaseLocked()

	if today.Marked {
		f.state = capture.StateAlreadyMarked
		for i := range today.Records {
			if today.Records[i].IsPresent() {
				rec := today.Records[i]
				f.record = &rec
				break
			}
		}
		return f.viewLocked(), nil
	}

	f.state = capture.StateCamera
	f.openCameraLocked(ctx)
	return f.viewLocked(), nil
}

// RetryCamera reopens the camera after a failed acquisition.
func (f *Flow) RetryCamera(ctx context.Context) (capture.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.guardLocked(capture.StateCamera); err != nil {
		return f.viewLocked(), err
	}
	if f.stream == nil {
		f.openCameraLocked(ctx)
	}
	return f.viewLocked(), nil
}

// Capture freezes the current frame, mirrored, and releases the camera.
func (f *Flow) Capture(ctx context.Context) (capture.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.guardLocked(capture.StateCamera); err != nil {
		return f.viewLocked(), err
	}
	if f.stream == nil {
		return f.viewLocked(), capture.ErrCameraNotReady
	}

	frame, err := f.stream.Frame()
	if err != nil {
		return f.viewLocked(), fmt.Errorf("failed to grab frame: %w", err)
	}
	photo, err := encodePhoto(frame)
	if err != nil {
		return f.viewLocked(), err
	}

	f.releaseLocked()
	f.photo = photo
	f.state = capture.StateLocation
	return f.viewLocked(), nil
}

// AcquireLocation requests one position, bounded by the location timeout,
// and reverse-geocodes it. Failures are recorded and the flow still moves
// to confirm without coordinates. A result arriving after Close, Retry or
// SkipLocation is discarded.
func (f *Flow) AcquireLocation(ctx context.Context) (capture.View, error) {
	f.mu.Lock()
	if err := f.guardLocked(capture.StateLocation); err != nil {
		v := f.viewLocked()
		f.mu.Unlock()
		return v, err
	}
	f.gen++
	gen := f.gen
	lctx, cancel := context.WithTimeout(ctx, f.deps.LocationTimeout)
	f.cancelLocate = cancel
	f.mu.Unlock()
	defer cancel()

	pos, err := f.deps.Locator.CurrentPosition(lctx)
	if err == nil && lctx.Err() != nil {
		err = capture.ErrLocationTimeout
	}
	var address string
	if err == nil {
		address = f.reverse(lctx, pos)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return f.viewLocked(), capture.ErrFlowClosed
	}
	if gen != f.gen || f.state != capture.StateLocation {
		return f.viewLocked(), nil
	}
	f.cancelLocate = nil

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = capture.ErrLocationTimeout
		}
		f.locationErr = capture.LocationMessage(err)
		f.position = nil
		f.address = ""
		slog.Info("location unavailable, continuing without coordinates", "error", err)
	} else {
		f.locationErr = ""
		f.position = &pos
		f.address = address
	}
	f.state = capture.StateConfirm
	return f.viewLocked(), nil
}

func (f *Flow) reverse(ctx context.Context, pos capture.Position) string {
	if f.deps.Geocoder == nil {
		return geocode.FallbackAddress
	}
	address, err := f.deps.Geocoder.Reverse(ctx, pos.Latitude, pos.Longitude)
	if err != nil || address == "" {
		return geocode.FallbackAddress
	}
	return address
}

// SkipLocation bypasses the position request.
func (f *Flow) SkipLocation() (capture.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.guardLocked(capture.StateLocation); err != nil {
		return f.viewLocked(), err
	}
	f.abortLocateLocked()
	f.position = nil
	f.address = capture.AddressNotAvailable
	f.locationErr = ""
	f.state = capture.StateConfirm
	return f.viewLocked(), nil
}

func (f *Flow) abortLocateLocked() {
	f.gen++
	if f.cancelLocate != nil {
		f.cancelLocate()
		f.cancelLocate = nil
	}
}

// Retry discards the photo and location and returns to the camera.
func (f *Flow) Retry(ctx context.Context) (capture.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.guardLocked(capture.StateConfirm); err != nil {
		return f.viewLocked(), err
	}
	f.abortLocateLocked()
	f.photo = nil
	f.position = nil
	f.address = ""
	f.locationErr = ""
	f.submitErr = ""
	f.state = capture.StateCamera
	f.openCameraLocked(ctx)
	return f.viewLocked(), nil
}

// Submit stores the photo and records attendance. On failure the flow stays
// in confirm with the error surfaced.
func (f *Flow) Submit(ctx context.Context) (capture.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.guardLocked(capture.StateConfirm); err != nil {
		return f.viewLocked(), err
	}

	rec, err := f.submitLocked(ctx)
	if err != nil {
		f.submitErr = submitErrorMessage
		slog.Error("attendance submit failed", "error", err)
		return f.viewLocked(), fmt.Errorf("%w: %w", capture.ErrSubmitFailed, err)
	}

	f.submitErr = ""
	f.record = &rec
	f.state = capture.StateSuccess
	return f.viewLocked(), nil
}

func (f *Flow) submitLocked(ctx context.Context) (attendance.Attendance, error) {
	photoURL, err := f.storePhoto(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	req := attendance.MarkAttendanceRequest{PhotoURL: &photoURL}
	if f.position != nil {
		lat, lon := f.position.Latitude, f.position.Longitude
		req.Latitude = &lat
		req.Longitude = &lon
	}
	if f.address != "" {
		address := f.address
		req.Address = &address
	}
	if f.device != "" {
		device := f.device
		req.Device = &device
	}
	return f.deps.Attendance.MarkAttendance(ctx, req)
}

// storePhoto uploads to file storage, or inlines the photo as a data URL
// when no storage is configured.
func (f *Flow) storePhoto(ctx context.Context) (string, error) {
	if f.deps.Photos == nil {
		return dataURL(f.photo), nil
	}

	key := fmt.Sprintf("attendance/%s/%s.jpg", f.deps.Now().Format(clock.DateLayout), uuid.NewString())
	key, err := f.deps.Photos.Upload(ctx, bytes.NewReader(f.photo), key, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance photo: %w", err)
	}
	url, err := f.deps.Photos.GetURL(ctx, key, 0)
	if err != nil {
		return "", fmt.Errorf("failed to resolve attendance photo url: %w", err)
	}
	return url, nil
}

// Close releases the camera and abandons any in-flight position request.
// It is idempotent.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.abortLocateLocked()
	f.releaseLocked()
}
