package capture

import (
	"context"
	"errors"
)

var (
	ErrCameraPermissionDenied = errors.New("camera permission denied")
	ErrNoCamera               = errors.New("no camera found")
	ErrCameraBusy             = errors.New("camera in use")
	ErrCameraUnavailable      = errors.New("camera unavailable")
	ErrCameraNotReady         = errors.New("camera not ready")

	ErrLocationDenied      = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrLocationTimeout     = errors.New("location request timed out")

	ErrInvalidTransition = errors.New("action not allowed in current capture state")
	ErrFlowClosed        = errors.New("capture flow closed")
	ErrNoFlow            = errors.New("no capture in progress")
	ErrUnsupportedImage  = errors.New("unsupported image format")
	ErrFrameTooLarge     = errors.New("frame dimensions too large")
	ErrSubmitFailed      = errors.New("failed to mark attendance")
)

// CameraMessage renders a camera acquisition failure for display.
func CameraMessage(err error) string {
	const prefix = "Camera access denied. "
	switch {
	case errors.Is(err, ErrCameraPermissionDenied):
		return prefix + "Please allow camera access in your browser settings."
	case errors.Is(err, ErrNoCamera):
		return prefix + "No camera found on this device."
	case errors.Is(err, ErrCameraBusy):
		return prefix + "Camera is in use by another application."
	default:
		return prefix + "Please check your camera permissions."
	}
}

// LocationMessage renders a position failure for display.
func LocationMessage(err error) string {
	const prefix = "Unable to get your location. "
	switch {
	case errors.Is(err, ErrLocationDenied):
		return prefix + "Location permission was denied. Please allow location access in your browser settings."
	case errors.Is(err, ErrLocationUnavailable):
		return prefix + "Location information is unavailable."
	case errors.Is(err, ErrLocationTimeout), errors.Is(err, context.DeadlineExceeded):
		return prefix + "Location request timed out."
	default:
		return prefix + "Please enable location services."
	}
}

// CameraErrorFromName maps a browser media error name.
func CameraErrorFromName(name string) error {
	switch name {
	case "":
		return nil
	case "NotAllowedError", "SecurityError":
		return ErrCameraPermissionDenied
	case "NotFoundError", "OverconstrainedError":
		return ErrNoCamera
	case "NotReadableError", "AbortError":
		return ErrCameraBusy
	default:
		return ErrCameraUnavailable
	}
}

// Browser geolocation error codes.
const (
	GeoPermissionDenied    = 1
	GeoPositionUnavailable = 2
	GeoTimeout             = 3
)

// LocationErrorFromCode maps a browser geolocation error code.
func LocationErrorFromCode(code int) error {
	switch code {
	case 0:
		return nil
	case GeoPermissionDenied:
		return ErrLocationDenied
	case GeoPositionUnavailable:
		return ErrLocationUnavailable
	case GeoTimeout:
		return ErrLocationTimeout
	default:
		return ErrLocationUnavailable
	}
}
