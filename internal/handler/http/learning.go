package http

import (
	"log/slog"
	"net/http"

	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type LearningHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type learningHandlerImpl struct {
	learningService learning.LearningService
}

func NewLearningHandler(learningService learning.LearningService) LearningHandler {
	return &learningHandlerImpl{learningService: learningService}
}

// Submit implements LearningHandler.
func (h *learningHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req learning.SubmitLearningRequest
	if !decodeJSON(w, r, &req, "SubmitLearning") {
		return
	}

	entry, err := h.learningService.SubmitLearning(r.Context(), req)
	if err != nil {
		slog.Error("SubmitLearning service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Learning logged", entry)
}

// ListMine implements LearningHandler.
func (h *learningHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	entries, err := h.learningService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine learning service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, entries, &response.Meta{Total: len(entries)})
}

// Summary implements LearningHandler.
func (h *learningHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.learningService.Summary(r.Context())
	if err != nil {
		slog.Error("Learning Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
