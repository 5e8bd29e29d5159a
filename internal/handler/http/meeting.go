package http

import (
	"log/slog"
	"net/http"

	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type MeetingHandler interface {
	Upcoming(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
}

type meetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &meetingHandlerImpl{meetingService: meetingService}
}

// Upcoming implements MeetingHandler.
func (h *meetingHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.Upcoming(r.Context())
	if err != nil {
		slog.Error("Upcoming meetings service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, meetings, &response.Meta{Total: len(meetings)})
}

// Schedule implements MeetingHandler.
func (h *meetingHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.meetingService.Schedule(r.Context())
	if err != nil {
		slog.Error("Schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule)
}
