package appointment

import "context"

type AppointmentRepository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error)
	List(ctx context.Context, filter ListFilter) ([]Appointment, error)
}
