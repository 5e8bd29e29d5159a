package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/capture"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

// maxFrameBytes bounds a single uploaded camera frame.
const maxFrameBytes = 10 << 20

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)

	StartCapture(w http.ResponseWriter, r *http.Request)
	CaptureStatus(w http.ResponseWriter, r *http.Request)
	RetryCamera(w http.ResponseWriter, r *http.Request)
	UploadFrame(w http.ResponseWriter, r *http.Request)
	Locate(w http.ResponseWriter, r *http.Request)
	SkipLocation(w http.ResponseWriter, r *http.Request)
	Retake(w http.ResponseWriter, r *http.Request)
	SubmitCapture(w http.ResponseWriter, r *http.Request)
	CancelCapture(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	captureService    capture.CaptureService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, captureService capture.CaptureService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		captureService:    captureService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if !decodeJSON(w, r, &req, "MarkAttendance") {
		return
	}

	record, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		slog.Error("MarkAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance marked", record)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.CheckOut(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out", record)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	today, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, today)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, records, &response.Meta{Total: len(records)})
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.ListFilter{
		EmployeeID: q.Get("employee_id"),
		FromDate:   q.Get("from"),
		ToDate:     q.Get("to"),
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, records, &response.Meta{Total: len(records)})
}

func (h *attendanceHandlerImpl) respondView(w http.ResponseWriter, op string, view capture.View, err error) {
	if err != nil {
		slog.Error(op+" capture error", "error", err, "state", view.State)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// StartCapture implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartCapture(w http.ResponseWriter, r *http.Request) {
	var req capture.StartRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req, "StartCapture") {
		return
	}
	if req.Device == "" {
		req.Device = r.UserAgent()
	}
	view, err := h.captureService.Start(r.Context(), req)
	h.respondView(w, "StartCapture", view, err)
}

// CaptureStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) CaptureStatus(w http.ResponseWriter, r *http.Request) {
	view, err := h.captureService.Status(r.Context())
	h.respondView(w, "CaptureStatus", view, err)
}

// RetryCamera implements AttendanceHandler.
func (h *attendanceHandlerImpl) RetryCamera(w http.ResponseWriter, r *http.Request) {
	var req capture.CameraRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req, "RetryCamera") {
		return
	}
	view, err := h.captureService.RetryCamera(r.Context(), req)
	h.respondView(w, "RetryCamera", view, err)
}

// UploadFrame implements AttendanceHandler. The body is the raw image.
func (h *attendanceHandlerImpl) UploadFrame(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFrameBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, "Frame too large", nil)
			return
		}
		slog.Error("UploadFrame read error", "error", err)
		response.BadRequest(w, "Invalid frame upload", nil)
		return
	}

	view, err := h.captureService.Capture(r.Context(), capture.FrameRequest{
		Data:        data,
		ContentType: r.Header.Get("Content-Type"),
	})
	h.respondView(w, "UploadFrame", view, err)
}

// Locate implements AttendanceHandler.
func (h *attendanceHandlerImpl) Locate(w http.ResponseWriter, r *http.Request) {
	var req capture.LocateRequest
	if !decodeJSON(w, r, &req, "Locate") {
		return
	}
	view, err := h.captureService.Locate(r.Context(), req)
	h.respondView(w, "Locate", view, err)
}

// SkipLocation implements AttendanceHandler.
func (h *attendanceHandlerImpl) SkipLocation(w http.ResponseWriter, r *http.Request) {
	view, err := h.captureService.SkipLocation(r.Context())
	h.respondView(w, "SkipLocation", view, err)
}

// Retake implements AttendanceHandler.
func (h *attendanceHandlerImpl) Retake(w http.ResponseWriter, r *http.Request) {
	var req capture.CameraRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req, "Retake") {
		return
	}
	view, err := h.captureService.Retry(r.Context(), req)
	h.respondView(w, "Retake", view, err)
}

// SubmitCapture implements AttendanceHandler.
func (h *attendanceHandlerImpl) SubmitCapture(w http.ResponseWriter, r *http.Request) {
	view, err := h.captureService.Submit(r.Context())
	h.respondView(w, "SubmitCapture", view, err)
}

// CancelCapture implements AttendanceHandler.
func (h *attendanceHandlerImpl) CancelCapture(w http.ResponseWriter, r *http.Request) {
	if err := h.captureService.Cancel(r.Context()); err != nil {
		slog.Error("CancelCapture error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Capture cancelled", nil)
}
