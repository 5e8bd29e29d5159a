package snapshot

import (
	"context"
	"errors"

	"github.com/grofast/portal-backend-go/internal/domain/appointment"
)

type appointmentRepositoryImpl struct {
	records collection[appointment.Appointment]
}

func NewAppointmentRepository(store *Store) appointment.AppointmentRepository {
	return &appointmentRepositoryImpl{records: collection[appointment.Appointment]{
		store: store,
		slot:  func(d *Snapshot) *[]appointment.Appointment { return &d.Appointments },
		id:    func(a appointment.Appointment) string { return a.ID },
	}}
}

// Create implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	if err := r.records.insert(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}
	return a, nil
}

// UpdateStatus implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status appointment.Status) (appointment.Appointment, error) {
	a, err := r.records.replace(ctx, id, func(a appointment.Appointment) appointment.Appointment {
		a.Status = status
		return a
	})
	if errors.Is(err, ErrRecordNotFound) {
		return appointment.Appointment{}, appointment.ErrAppointmentNotFound
	}
	return a, err
}

// List implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) List(ctx context.Context, filter appointment.ListFilter) ([]appointment.Appointment, error) {
	return r.records.filter(func(a appointment.Appointment) bool {
		if filter.RequestedBy != "" && a.RequestedBy != filter.RequestedBy {
			return false
		}
		if filter.RequestedWith != "" && a.RequestedWith != filter.RequestedWith {
			return false
		}
		if filter.Status != "" && a.Status != filter.Status {
			return false
		}
		return true
	}), nil
}
