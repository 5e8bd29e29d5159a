package dashboard

import (
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
)

// Stats is derived fresh from the record collections on every call.
type Stats struct {
	AttendanceMarked bool `json:"attendanceMarked"`
	UpdateSubmitted  bool `json:"updateSubmitted"`
	PendingLeaves    int  `json:"pendingLeaves"`
	UpcomingMeetings int  `json:"upcomingMeetings"`
	LearningStreak   int  `json:"learningStreak"`
}

// Overview is the dashboard screen payload.
type Overview struct {
	Profile             user.ProfileResponse      `json:"profile"`
	Greeting            string                    `json:"greeting"`
	Stats               Stats                     `json:"stats"`
	TodayAttendance     *attendance.Attendance    `json:"todayAttendance"`
	TodayUpdate         *workupdate.WorkUpdate    `json:"todayUpdate"`
	NextMeetings        []meeting.MeetingResponse `json:"nextMeetings"`
	PendingApprovals    int                       `json:"pendingApprovals"`
	PendingAppointments int                       `json:"pendingAppointments"`
}
