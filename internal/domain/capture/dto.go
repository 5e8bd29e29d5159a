package capture

import "github.com/grofast/portal-backend-go/internal/pkg/validator"

type StartRequest struct {
	Device string `json:"device"`
	// CameraError is the media error name reported by the client, if any.
	CameraError string `json:"cameraError,omitempty"`
}

type CameraRequest struct {
	CameraError string `json:"cameraError,omitempty"`
}

type FrameRequest struct {
	Data        []byte
	ContentType string
}

func (r *FrameRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Data) == 0 {
		errs.Add("frame", "frame is required")
	}
	switch r.ContentType {
	case "", "image/jpeg", "image/png", "image/webp":
	default:
		errs.Add("frame", "frame must be jpeg, png or webp")
	}
	return errs.Err()
}

// LocateRequest carries either a position or a geolocation error code.
type LocateRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	ErrorCode int      `json:"errorCode,omitempty"`
}

func (r *LocateRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ErrorCode == 0 {
		if r.Latitude == nil || r.Longitude == nil {
			errs.Add("latitude", "latitude and longitude are required without an error code")
		}
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs.Add("latitude", "latitude must be between -90 and 90")
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs.Add("longitude", "longitude must be between -180 and 180")
	}
	return errs.Err()
}
