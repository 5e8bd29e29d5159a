package appointment

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

type BookAppointmentRequest struct {
	RequestedWith string `json:"requestedWith"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Agenda        string `json:"agenda"`

	RequestedWithName *string    `json:"requestedWithName,omitempty"`
	RequestedWithRole *string    `json:"requestedWithRole,omitempty"`
	RequestedBy       *string    `json:"requestedBy,omitempty"`
	RequestedByName   *string    `json:"requestedByName,omitempty"`
	Status            *Status    `json:"status,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

func (r *BookAppointmentRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("requestedWith", r.RequestedWith)
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be YYYY-MM-DD")
	}
	if !validator.IsValidClock(r.Time) {
		errs.Add("time", "time must be HH:MM")
	}
	errs.Required("agenda", r.Agenda)
	if r.Status != nil && !r.Status.IsValid() {
		errs.Add("status", "invalid appointment status")
	}

	return errs.Err()
}

// Build fills requester fields from actor and counterpart fields from
// contact, then applies overrides.
func (r BookAppointmentRequest) Build(id string, actor user.Identity, contact Contact, now time.Time) Appointment {
	a := Appointment{
		ID:                id,
		RequestedBy:       actor.ID,
		RequestedByName:   actor.Name,
		RequestedWith:     r.RequestedWith,
		RequestedWithName: contact.Name,
		RequestedWithRole: contact.RoleLabel,
		Date:              r.Date,
		Time:              r.Time,
		Agenda:            r.Agenda,
		Status:            StatusPending,
		CreatedAt:         now.UTC(),
	}

	if r.RequestedWithName != nil {
		a.RequestedWithName = *r.RequestedWithName
	}
	if r.RequestedWithRole != nil {
		a.RequestedWithRole = *r.RequestedWithRole
	}
	if r.RequestedBy != nil {
		a.RequestedBy = *r.RequestedBy
	}
	if r.RequestedByName != nil {
		a.RequestedByName = *r.RequestedByName
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.CreatedAt != nil {
		a.CreatedAt = *r.CreatedAt
	}
	return a
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.Status.IsValid() {
		errs.Add("status", "status must be pending, approved or rejected")
	}
	return errs.Err()
}

type ListFilter struct {
	RequestedBy   string
	RequestedWith string
	Status        Status
}
