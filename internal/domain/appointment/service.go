package appointment

import "context"

type AppointmentService interface {
	BookAppointment(ctx context.Context, req BookAppointmentRequest) (Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status Status) (Appointment, error)
	ListMine(ctx context.Context) ([]Appointment, error)
	// Incoming lists pending requests addressed to the acting user.
	Incoming(ctx context.Context) ([]Appointment, error)
	Contacts(ctx context.Context) ([]Contact, error)
}
