package capture

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/capture"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/geocode"
	"github.com/grofast/portal-backend-go/internal/pkg/storage"
)

// remoteDevice stands in for the camera and locator of a client that
// uploads its frames and reports its position over HTTP.
type remoteDevice struct {
	mu        sync.Mutex
	cameraErr error
	frame     image.Image
	position  *capture.Position
	posErr    error
}

func (d *remoteDevice) Open(ctx context.Context) (capture.Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cameraErr != nil {
		return nil, d.cameraErr
	}
	return remoteStream{d}, nil
}

func (d *remoteDevice) CurrentPosition(ctx context.Context) (capture.Position, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.posErr != nil {
		return capture.Position{}, d.posErr
	}
	if d.position == nil {
		return capture.Position{}, capture.ErrLocationUnavailable
	}
	return *d.position, nil
}

func (d *remoteDevice) setCameraError(name string) {
	d.mu.Lock()
	d.cameraErr = capture.CameraErrorFromName(name)
	d.mu.Unlock()
}

type remoteStream struct{ d *remoteDevice }

func (s remoteStream) Frame() (image.Image, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.frame == nil {
		return nil, capture.ErrCameraNotReady
	}
	return s.d.frame, nil
}

func (s remoteStream) Stop() {
	s.d.mu.Lock()
	s.d.frame = nil
	s.d.mu.Unlock()
}

type session struct {
	flow   *Flow
	device *remoteDevice
}

type CaptureServiceImpl struct {
	attendance      attendance.AttendanceService
	geocoder        geocode.Geocoder
	photos          storage.FileStorage
	now             clock.Clock
	locationTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewCaptureService keeps one flow per user. photos may be nil, in which
// case photos are stored inline as data URLs.
func NewCaptureService(
	attendanceService attendance.AttendanceService,
	geocoder geocode.Geocoder,
	photos storage.FileStorage,
	now clock.Clock,
	locationTimeout time.Duration,
) capture.CaptureService {
	return &CaptureServiceImpl{
		attendance:      attendanceService,
		geocoder:        geocoder,
		photos:          photos,
		now:             now,
		locationTimeout: locationTimeout,
		sessions:        make(map[string]*session),
	}
}

func (s *CaptureServiceImpl) current(ctx context.Context) (*session, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[identity.ID]
	if !ok {
		return nil, capture.ErrNoFlow
	}
	return sess, nil
}

// Start implements capture.CaptureService. Any previous flow of the same
// user is closed first.
func (s *CaptureServiceImpl) Start(ctx context.Context, req capture.StartRequest) (capture.View, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return capture.View{}, err
	}

	device := &remoteDevice{}
	device.setCameraError(req.CameraError)
	flow := NewFlow(FlowDeps{
		Camera:          device,
		Locator:         device,
		Geocoder:        s.geocoder,
		Attendance:      s.attendance,
		Photos:          s.photos,
		Now:             s.now,
		LocationTimeout: s.locationTimeout,
	}, req.Device)

	s.mu.Lock()
	if prev, ok := s.sessions[identity.ID]; ok {
		prev.flow.Close()
	}
	s.sessions[identity.ID] = &session{flow: flow, device: device}
	s.mu.Unlock()

	view, err := flow.Mount(ctx)
	if err != nil {
		return capture.View{}, err
	}
	slog.Debug("capture started", "user_id", identity.ID, "state", view.State)
	return view, nil
}

// Status implements capture.CaptureService.
func (s *CaptureServiceImpl) Status(ctx context.Context) (capture.View, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}
	return sess.flow.View(), nil
}

// RetryCamera implements capture.CaptureService.
func (s *CaptureServiceImpl) RetryCamera(ctx context.Context, req capture.CameraRequest) (capture.View, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}
	sess.device.setCameraError(req.CameraError)
	return sess.flow.RetryCamera(ctx)
}

// Capture implements capture.CaptureService.
func (s *CaptureServiceImpl) Capture(ctx context.Context, req capture.FrameRequest) (capture.View, error) {
	if err := req.Validate(); err != nil {
		return capture.View{}, err
	}
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}

	frame, err := decodeFrame(req.Data)
	if err != nil {
		return sess.flow.View(), err
	}
	sess.device.mu.Lock()
	sess.device.frame = frame
	sess.device.mu.Unlock()

	return sess.flow.Capture(ctx)
}

// Locate implements capture.CaptureService.
func (s *CaptureServiceImpl) Locate(ctx context.Context, req capture.LocateRequest) (capture.View, error) {
	if err := req.Validate(); err != nil {
		return capture.View{}, err
	}
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}

	sess.device.mu.Lock()
	sess.device.posErr = capture.LocationErrorFromCode(req.ErrorCode)
	sess.device.position = nil
	if sess.device.posErr == nil {
		sess.device.position = &capture.Position{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}
	sess.device.mu.Unlock()

	return sess.flow.AcquireLocation(ctx)
}

// SkipLocation implements capture.CaptureService.
func (s *CaptureServiceImpl) SkipLocation(ctx context.Context) (capture.View, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}
	return sess.flow.SkipLocation()
}

// Retry implements capture.CaptureService.
func (s *CaptureServiceImpl) Retry(ctx context.Context, req capture.CameraRequest) (capture.View, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}
	sess.device.setCameraError(req.CameraError)
	return sess.flow.Retry(ctx)
}

// Submit implements capture.CaptureService.
func (s *CaptureServiceImpl) Submit(ctx context.Context) (capture.View, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return capture.View{}, err
	}
	return sess.flow.Submit(ctx)
}

// Cancel implements capture.CaptureService. The flow is closed and
// forgotten.
func (s *CaptureServiceImpl) Cancel(ctx context.Context) error {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	sess, ok := s.sessions[identity.ID]
	delete(s.sessions, identity.ID)
	s.mu.Unlock()
	if !ok {
		return capture.ErrNoFlow
	}
	sess.flow.Close()
	return nil
}
