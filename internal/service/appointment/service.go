package appointment

import (
	"context"
	"fmt"

	"github.com/grofast/portal-backend-go/internal/domain/appointment"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
)

type AppointmentServiceImpl struct {
	appointment.AppointmentRepository
	directory user.Directory
	notifier  webhook.Notifier
	now       clock.Clock
}

func NewAppointmentService(repo appointment.AppointmentRepository, directory user.Directory, notifier webhook.Notifier, now clock.Clock) appointment.AppointmentService {
	return &AppointmentServiceImpl{
		AppointmentRepository: repo,
		directory:             directory,
		notifier:              notifier,
		now:                   now,
	}
}

// bookable reports whether actor may request time with target. The MD only
// takes bookings from seniors and team leads.
func bookable(actor user.Identity, target user.Identity) bool {
	if target.ID == actor.ID {
		return false
	}
	switch target.Role {
	case user.RoleTeamLead, user.RoleSenior:
		return true
	case user.RoleMD:
		return actor.Role == user.RoleSenior || actor.Role == user.RoleTeamLead
	}
	return false
}

// Contacts implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Contacts(ctx context.Context) ([]appointment.Contact, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	people, err := s.directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	contacts := []appointment.Contact{}
	for _, p := range people {
		if !bookable(identity, p) {
			continue
		}
		contacts = append(contacts, appointment.Contact{
			ID:        p.ID,
			Name:      p.Name,
			Role:      string(p.Role),
			RoleLabel: user.RoleLabel(p.Role),
		})
	}
	return contacts, nil
}

// BookAppointment implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) BookAppointment(ctx context.Context, req appointment.BookAppointmentRequest) (appointment.Appointment, error) {
	if err := req.Validate(); err != nil {
		return appointment.Appointment{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return appointment.Appointment{}, err
	}

	contacts, err := s.Contacts(ctx)
	if err != nil {
		return appointment.Appointment{}, err
	}
	var contact *appointment.Contact
	for i := range contacts {
		if contacts[i].ID == req.RequestedWith {
			contact = &contacts[i]
			break
		}
	}
	if contact == nil {
		return appointment.Appointment{}, appointment.ErrContactNotBookable
	}

	created, err := s.AppointmentRepository.Create(ctx, req.Build(idgen.New(idgen.PrefixAppointment), identity, *contact, s.now()))
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("failed to save appointment: %w", err)
	}

	s.notifier.Notify(ctx, webhook.EndpointAppointment, created)
	return created, nil
}

// UpdateAppointmentStatus implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) UpdateAppointmentStatus(ctx context.Context, id string, status appointment.Status) (appointment.Appointment, error) {
	if _, err := user.FromContext(ctx); err != nil {
		return appointment.Appointment{}, err
	}
	return s.AppointmentRepository.UpdateStatus(ctx, id, status)
}

// ListMine implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) ListMine(ctx context.Context) ([]appointment.Appointment, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.AppointmentRepository.List(ctx, appointment.ListFilter{RequestedBy: identity.ID})
}

// Incoming implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Incoming(ctx context.Context) ([]appointment.Appointment, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.AppointmentRepository.List(ctx, appointment.ListFilter{RequestedWith: identity.ID, Status: appointment.StatusPending})
}
