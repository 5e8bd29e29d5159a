package report

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
)

type Type string

const (
	TypeAttendance Type = "attendance"
	TypeWork       Type = "work"
	TypeLearning   Type = "learning"
	TypeLeave      Type = "leave"
)

func (t Type) IsValid() bool {
	return t == TypeAttendance || t == TypeWork || t == TypeLearning || t == TypeLeave
}

type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// Days is the look-back window length.
func (r Range) Days() int {
	if r == RangeMonth {
		return 30
	}
	return 7
}

func (r Range) IsValid() bool {
	return r == RangeWeek || r == RangeMonth
}

type AttendanceStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Rate    int `json:"rate"`
}

type WorkStats struct {
	Total            int `json:"total"`
	Approved         int `json:"approved"`
	Pending          int `json:"pending"`
	NeedsImprovement int `json:"needs_improvement"`
}

type LearningStats struct {
	Sessions      int     `json:"sessions"`
	TotalHours    float64 `json:"totalHours"`
	AvgConfidence float64 `json:"avgConfidence"`
	TopType       string  `json:"topType"`
}

type LeaveStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Report is the downloadable document for one report type.
type Report struct {
	GeneratedAt time.Time `json:"generatedAt"`
	DateRange   DateRange `json:"dateRange"`
	ReportType  Type      `json:"reportType"`
	Data        any       `json:"data"`
}

// Overview is every report section at once, for the reports screen.
type Overview struct {
	Range      Range           `json:"range"`
	Attendance AttendanceStats `json:"attendance"`
	Work       WorkStats       `json:"work"`
	Learning   LearningStats   `json:"learning"`
	Leave      LeaveStats      `json:"leave"`
}

// Progression summarises one user's activity over a range.
type Progression struct {
	Range          Range   `json:"range"`
	WorkDays       int     `json:"workDays"`
	DaysPresent    int     `json:"daysPresent"`
	AttendanceRate int     `json:"attendanceRate"`
	UpdatesCount   int     `json:"updatesCount"`
	UpdateRate     int     `json:"updateRate"`
	LearningHours  float64 `json:"learningHours"`
	AvgConfidence  float64 `json:"avgConfidence"`
	LearningStreak int     `json:"learningStreak"`
	OverallScore   int     `json:"overallScore"`
}

// AdminStats is the admin panel header.
type AdminStats struct {
	TotalUsers      int `json:"totalUsers"`
	ActiveUsers     int `json:"activeUsers"`
	TotalTeams      int `json:"totalTeams"`
	PendingLeaves   int `json:"pendingLeaves"`
	TodayAttendance int `json:"todayAttendance"`
	TodayUpdates    int `json:"todayUpdates"`
}

// DataExport is the full admin export. It carries no schema version.
type DataExport struct {
	ExportDate    time.Time               `json:"exportDate"`
	Users         []user.Identity         `json:"users"`
	Teams         []team.Team             `json:"teams"`
	Attendance    []attendance.Attendance `json:"attendance"`
	LeaveRequests []leave.LeaveRequest    `json:"leaveRequests"`
	WorkUpdates   []workupdate.WorkUpdate `json:"workUpdates"`
	Learning      []learning.Entry        `json:"learning"`
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)
