package fixtures

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/appointment"
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/chat"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
)

// ==========================================
// HELPERS
// ==========================================

func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

// ==========================================
// SEED SNAPSHOT
// ==========================================

// Seed returns the demo collections used when nothing has been persisted.
// Records dated "today" use the given date.
func Seed(today string) snapshot.Snapshot {
	return snapshot.Snapshot{
		Teams: []team.Team{
			{ID: "team-001", Name: "Digital Marketing", Department: "Marketing", LeadID: "tl-001", Members: []string{"emp-001", "tl-001"}, CreatedAt: "2024-01-15"},
			{ID: "team-002", Name: "Operations", Department: "Operations", LeadID: "senior-001", Members: []string{"senior-001"}, CreatedAt: "2024-01-10"},
			{ID: "team-003", Name: "Development", Department: "Tech", LeadID: "tl-002", Members: []string{}, CreatedAt: "2024-02-01"},
		},
		Attendance: []attendance.Attendance{
			{ID: "att-001", Date: today, EmployeeID: "emp-001", Status: attendance.StatusPending},
		},
		LeaveRequests: []leave.LeaveRequest{
			{
				ID:           "leave-001",
				EmployeeID:   "emp-001",
				EmployeeName: "Ravi Kumar",
				Team:         "Digital Marketing",
				LeaveType:    leave.LeaveTypeCasual,
				FromDate:     "2026-01-05",
				ToDate:       "2026-01-05",
				Reason:       "Personal work",
				Status:       leave.StatusPending,
				CreatedAt:    ts("2026-01-01T00:00:00"),
			},
		},
		WorkUpdates: []workupdate.WorkUpdate{
			{
				ID:            "wu-001",
				Date:          "2025-12-31",
				EmployeeID:    "emp-001",
				EmployeeName:  "Ravi Kumar",
				Team:          "Digital Marketing",
				YesterdayWork: "Completed social media content calendar for January",
				TodayPlan:     "Design creatives for new campaign",
				Blockers:      "Waiting for brand guidelines",
				TimeSpent:     "6 hours",
				Attachments:   []string{},
				ReviewStatus:  workupdate.ReviewPending,
				SubmittedAt:   ts("2025-12-31T09:30:00"),
			},
		},
		Learning: []learning.Entry{
			{
				ID:           "learn-001",
				Date:         "2025-12-31",
				EmployeeID:   "emp-001",
				EmployeeName: "Ravi Kumar",
				Topic:        "Advanced Google Ads Optimization",
				LearningType: learning.TypeCourse,
				TimeSpent:    "2 hours",
				Confidence:   4,
				ResourceLink: "https://skillshop.google.com",
				Notes:        "Learned about smart bidding strategies",
			},
		},
		Appointments: []appointment.Appointment{
			{
				ID:                "apt-001",
				RequestedBy:       "emp-001",
				RequestedByName:   "Ravi Kumar",
				RequestedWith:     "tl-001",
				RequestedWithName: "Priya Sharma",
				RequestedWithRole: "Team Lead",
				Date:              "2026-01-02",
				Time:              "14:00",
				Agenda:            "Discuss Q1 marketing strategy",
				Status:            appointment.StatusPending,
				CreatedAt:         ts("2026-01-01T00:00:00"),
			},
		},
		Meetings: []meeting.Meeting{
			{ID: "meet-001", Title: "Daily Standup - Marketing", Type: meeting.TypeDaily, TeamID: "team-001", Date: today, Time: "10:00", Duration: 15, Attendees: []string{"emp-001", "tl-001"}, Status: "scheduled"},
			{ID: "meet-002", Title: "Weekly Review - Marketing", Type: meeting.TypeWeekly, TeamID: "team-001", Date: "2026-01-06", Time: "15:00", Duration: 60, Attendees: []string{"emp-001", "tl-001", "senior-001"}, Status: "scheduled"},
		},
		Messages: []chat.Message{
			{ID: "msg-001", ChatID: "chat-emp001-tl001", SenderID: "tl-001", SenderName: "Priya Sharma", Content: "Hi Ravi, how is the campaign progress?", Timestamp: ts("2025-12-31T14:30:00"), Read: true},
			{ID: "msg-002", ChatID: "chat-emp001-tl001", SenderID: "emp-001", SenderName: "Ravi Kumar", Content: "Going great! Will share the draft by EOD.", Timestamp: ts("2025-12-31T14:35:00"), Read: true},
		},
		Chats: []chat.Chat{
			{
				ID:              "chat-emp001-tl001",
				Type:            chat.TypeDirect,
				Participants:    []string{"emp-001", "tl-001"},
				LastMessage:     "Going great! Will share the draft by EOD.",
				LastMessageTime: tsPtr("2025-12-31T14:35:00"),
			},
			{
				ID:              "chat-team-001",
				Type:            chat.TypeGroup,
				Name:            "Digital Marketing Team",
				Participants:    []string{"emp-001", "tl-001"},
				LastMessage:     "Team meeting at 3 PM today",
				LastMessageTime: tsPtr("2025-12-31T10:00:00"),
			},
		},
	}
}
