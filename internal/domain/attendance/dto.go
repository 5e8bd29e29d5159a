package attendance

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest is the caller payload. Defaults come from the acting
// identity and the clock; any non-nil override wins over its default.
type MarkAttendanceRequest struct {
	PhotoURL  *string  `json:"photo,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Device    *string  `json:"device,omitempty"`

	Date       *string    `json:"date,omitempty"`
	EmployeeID *string    `json:"employeeId,omitempty"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Status     *Status    `json:"status,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs.Add("status", "invalid attendance status")
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs.Add("latitude", "latitude and longitude must be provided together")
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs.Add("latitude", "latitude must be between -90 and 90")
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs.Add("longitude", "longitude must be between -180 and 180")
	}

	return errs.Err()
}

// Build applies defaults (date, employee, check-in, status present) and
// then the caller's overrides.
func (r MarkAttendanceRequest) Build(id, actorID string, now time.Time) Attendance {
	checkIn := now.UTC()
	a := Attendance{
		ID:         id,
		Date:       now.Format(clock.DateLayout),
		EmployeeID: actorID,
		CheckIn:    &checkIn,
		Status:     StatusPresent,
		PhotoURL:   r.PhotoURL,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Address:    r.Address,
		Device:     r.Device,
	}

	if r.Date != nil {
		a.Date = *r.Date
	}
	if r.EmployeeID != nil {
		a.EmployeeID = *r.EmployeeID
	}
	if r.CheckIn != nil {
		a.CheckIn = r.CheckIn
	}
	if r.CheckOut != nil {
		a.CheckOut = r.CheckOut
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	return a
}

// TodayResponse reports the acting user's attendance for the current date.
type TodayResponse struct {
	Date    string       `json:"date"`
	Marked  bool         `json:"marked"`
	Records []Attendance `json:"records"`
}

type ListFilter struct {
	EmployeeID string
	FromDate   string
	ToDate     string
}
