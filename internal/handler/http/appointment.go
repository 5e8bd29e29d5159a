package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grofast/portal-backend-go/internal/domain/appointment"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type AppointmentHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Incoming(w http.ResponseWriter, r *http.Request)
	Contacts(w http.ResponseWriter, r *http.Request)
}

type appointmentHandlerImpl struct {
	appointmentService appointment.AppointmentService
}

func NewAppointmentHandler(appointmentService appointment.AppointmentService) AppointmentHandler {
	return &appointmentHandlerImpl{appointmentService: appointmentService}
}

// Book implements AppointmentHandler.
func (h *appointmentHandlerImpl) Book(w http.ResponseWriter, r *http.Request) {
	var req appointment.BookAppointmentRequest
	if !decodeJSON(w, r, &req, "BookAppointment") {
		return
	}

	booked, err := h.appointmentService.BookAppointment(r.Context(), req)
	if err != nil {
		slog.Error("BookAppointment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Appointment requested", booked)
}

// UpdateStatus implements AppointmentHandler.
func (h *appointmentHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req appointment.UpdateStatusRequest
	if !decodeJSON(w, r, &req, "UpdateAppointmentStatus") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.appointmentService.UpdateAppointmentStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		slog.Error("UpdateAppointmentStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Appointment updated", updated)
}

// ListMine implements AppointmentHandler.
func (h *appointmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine appointment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, appointments, &response.Meta{Total: len(appointments)})
}

// Incoming implements AppointmentHandler.
func (h *appointmentHandlerImpl) Incoming(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentService.Incoming(r.Context())
	if err != nil {
		slog.Error("Incoming appointment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, appointments, &response.Meta{Total: len(appointments)})
}

// Contacts implements AppointmentHandler.
func (h *appointmentHandlerImpl) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.appointmentService.Contacts(r.Context())
	if err != nil {
		slog.Error("Contacts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, contacts)
}
