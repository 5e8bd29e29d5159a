package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	PendingApprovals(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
	if !decodeJSON(w, r, &req, "SubmitLeaveRequest") {
		return
	}

	created, err := h.leaveService.SubmitLeaveRequest(r.Context(), req)
	if err != nil {
		slog.Error("SubmitLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest
	if !decodeJSON(w, r, &req, "UpdateLeaveStatus") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveService.UpdateLeaveStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.ApprovedBy)
	if err != nil {
		slog.Error("UpdateLeaveStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request updated", updated)
}

// ListMine implements LeaveHandler. ?status= narrows the list.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListMine(r.Context(), leave.Status(r.URL.Query().Get("status")))
	if err != nil {
		slog.Error("ListMine leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, requests, &response.Meta{Total: len(requests)})
}

// PendingApprovals implements LeaveHandler.
func (h *leaveHandlerImpl) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.PendingApprovals(r.Context())
	if err != nil {
		slog.Error("PendingApprovals service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, requests, &response.Meta{Total: len(requests)})
}

// Balance implements LeaveHandler.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.leaveService.Balance(r.Context())
	if err != nil {
		slog.Error("Balance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}
