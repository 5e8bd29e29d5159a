package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type WorkUpdateHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	PendingReviews(w http.ResponseWriter, r *http.Request)
}

type workUpdateHandlerImpl struct {
	workUpdateService workupdate.WorkUpdateService
}

func NewWorkUpdateHandler(workUpdateService workupdate.WorkUpdateService) WorkUpdateHandler {
	return &workUpdateHandlerImpl{workUpdateService: workUpdateService}
}

// Submit implements WorkUpdateHandler.
func (h *workUpdateHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req workupdate.SubmitWorkUpdateRequest
	if !decodeJSON(w, r, &req, "SubmitWorkUpdate") {
		return
	}

	created, err := h.workUpdateService.SubmitWorkUpdate(r.Context(), req)
	if err != nil {
		slog.Error("SubmitWorkUpdate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work update submitted", created)
}

// Review implements WorkUpdateHandler.
func (h *workUpdateHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req workupdate.ReviewRequest
	if !decodeJSON(w, r, &req, "ReviewWorkUpdate") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reviewed, err := h.workUpdateService.ReviewWorkUpdate(r.Context(), chi.URLParam(r, "id"), req.Status, req.Comment)
	if err != nil {
		slog.Error("ReviewWorkUpdate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work update reviewed", reviewed)
}

// GetToday implements WorkUpdateHandler. Data is null when nothing was
// submitted today.
func (h *workUpdateHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	today, err := h.workUpdateService.GetToday(r.Context())
	if err != nil {
		slog.Error("GetToday work update service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, today)
}

// ListMine implements WorkUpdateHandler.
func (h *workUpdateHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	updates, err := h.workUpdateService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine work update service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, updates, &response.Meta{Total: len(updates)})
}

// PendingReviews implements WorkUpdateHandler.
func (h *workUpdateHandlerImpl) PendingReviews(w http.ResponseWriter, r *http.Request) {
	updates, err := h.workUpdateService.PendingReviews(r.Context())
	if err != nil {
		slog.Error("PendingReviews service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, updates, &response.Meta{Total: len(updates)})
}
