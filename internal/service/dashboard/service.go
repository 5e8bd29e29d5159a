package dashboard

import (
	"context"

	"github.com/grofast/portal-backend-go/internal/domain/appointment"
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/dashboard"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

const nextMeetingsLimit = 3

type DashboardServiceImpl struct {
	attendance  attendance.AttendanceService
	workUpdates workupdate.WorkUpdateService
	leave       leave.LeaveService
	meetings    meeting.MeetingService
	learning    learning.LearningService
	appointment appointment.AppointmentService
	now         clock.Clock
}

func NewDashboardService(
	attendanceService attendance.AttendanceService,
	workUpdateService workupdate.WorkUpdateService,
	leaveService leave.LeaveService,
	meetingService meeting.MeetingService,
	learningService learning.LearningService,
	appointmentService appointment.AppointmentService,
	now clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendance:  attendanceService,
		workUpdates: workUpdateService,
		leave:       leaveService,
		meetings:    meetingService,
		learning:    learningService,
		appointment: appointmentService,
		now:         now,
	}
}

// GetDashboardStats implements dashboard.DashboardService. Every figure is
// recomputed from the collections.
func (s *DashboardServiceImpl) GetDashboardStats(ctx context.Context) (dashboard.Stats, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	var stats dashboard.Stats
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		today, err := s.attendance.GetToday(gCtx)
		if err != nil {
			return err
		}
		stats.AttendanceMarked = today.Marked
		return nil
	})

	g.Go(func() error {
		update, err := s.workUpdates.GetToday(gCtx)
		if err != nil {
			return err
		}
		stats.UpdateSubmitted = update != nil
		return nil
	})

	g.Go(func() error {
		pending, err := s.leave.ListMine(gCtx, leave.StatusPending)
		if err != nil {
			return err
		}
		stats.PendingLeaves = len(pending)
		return nil
	})

	g.Go(func() error {
		upcoming, err := s.meetings.Upcoming(gCtx)
		if err != nil {
			return err
		}
		stats.UpcomingMeetings = len(upcoming)
		return nil
	})

	g.Go(func() error {
		streak, err := s.learning.Streak(gCtx, identity.ID)
		if err != nil {
			return err
		}
		stats.LearningStreak = streak
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.Stats{}, err
	}
	return stats, nil
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// GetOverview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.Overview, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return dashboard.Overview{}, err
	}

	overview := dashboard.Overview{
		Profile:      user.NewProfileResponse(identity),
		Greeting:     greeting(s.now().Hour()),
		NextMeetings: []meeting.MeetingResponse{},
	}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.GetDashboardStats(gCtx)
		if err != nil {
			return err
		}
		overview.Stats = stats
		return nil
	})

	g.Go(func() error {
		today, err := s.attendance.GetToday(gCtx)
		if err != nil {
			return err
		}
		for i := range today.Records {
			if today.Records[i].IsPresent() {
				overview.TodayAttendance = &today.Records[i]
				break
			}
		}
		return nil
	})

	g.Go(func() error {
		update, err := s.workUpdates.GetToday(gCtx)
		if err != nil {
			return err
		}
		overview.TodayUpdate = update
		return nil
	})

	g.Go(func() error {
		upcoming, err := s.meetings.Upcoming(gCtx)
		if err != nil {
			return err
		}
		for i, m := range upcoming {
			if i == nextMeetingsLimit {
				break
			}
			overview.NextMeetings = append(overview.NextMeetings, meeting.NewMeetingResponse(m))
		}
		return nil
	})

	if identity.IsReviewer() {
		g.Go(func() error {
			pending, err := s.leave.PendingApprovals(gCtx)
			if err != nil {
				return err
			}
			overview.PendingApprovals = len(pending)
			return nil
		})
	}

	g.Go(func() error {
		incoming, err := s.appointment.Incoming(gCtx)
		if err != nil {
			return err
		}
		overview.PendingAppointments = len(incoming)
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.Overview{}, err
	}
	return overview, nil
}
