package response

import (
	"errors"
	"net/http"

	"github.com/grofast/portal-backend-go/internal/domain/appointment"
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/auth"
	"github.com/grofast/portal-backend-go/internal/domain/capture"
	"github.com/grofast/portal-backend-go/internal/domain/chat"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/report"
	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session and access errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrNotLoggedIn), errors.Is(err, user.ErrNotAuthenticated):
		Unauthorized(w, "Not logged in")
	case errors.Is(err, user.ErrAccessDenied):
		Forbidden(w, "access denied")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Record errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, workupdate.ErrWorkUpdateNotFound):
		NotFound(w, "Work update not found")
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		NotFound(w, "Appointment not found")
	case errors.Is(err, appointment.ErrContactNotBookable):
		Forbidden(w, err.Error())
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, chat.ErrChatNotFound):
		NotFound(w, "Chat not found")
	case errors.Is(err, chat.ErrNotParticipant):
		Forbidden(w, "access denied")

	// Capture flow errors
	case errors.Is(err, capture.ErrNoFlow):
		NotFound(w, "No capture in progress")
	case errors.Is(err, capture.ErrInvalidTransition),
		errors.Is(err, capture.ErrFlowClosed),
		errors.Is(err, capture.ErrCameraNotReady):
		Conflict(w, err.Error())
	case errors.Is(err, capture.ErrUnsupportedImage):
		BadRequest(w, "Unsupported image format", nil)
	case errors.Is(err, capture.ErrFrameTooLarge):
		BadRequest(w, "Frame too large", nil)
	case errors.Is(err, capture.ErrSubmitFailed):
		InternalServerError(w, "Failed to mark attendance. Please try again.")

	// Report errors
	case errors.Is(err, report.ErrInvalidReportType),
		errors.Is(err, report.ErrInvalidRange),
		errors.Is(err, report.ErrInvalidFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
