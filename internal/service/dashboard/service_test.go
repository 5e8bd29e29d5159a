package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/dashboard"
	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/directory"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	appointmentsvc "github.com/grofast/portal-backend-go/internal/service/appointment"
	attendancesvc "github.com/grofast/portal-backend-go/internal/service/attendance"
	leavesvc "github.com/grofast/portal-backend-go/internal/service/leave"
	learningsvc "github.com/grofast/portal-backend-go/internal/service/learning"
	meetingsvc "github.com/grofast/portal-backend-go/internal/service/meeting"
	workupdatesvc "github.com/grofast/portal-backend-go/internal/service/workupdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)

type nopNotifier struct{}

func (nopNotifier) Notify(ctx context.Context, endpoint webhook.Endpoint, payload any) {}
func (nopNotifier) Send(ctx context.Context, endpoint webhook.Endpoint, payload any) webhook.Result {
	return webhook.Result{Success: true}
}

type services struct {
	dashboard  dashboard.DashboardService
	attendance attendance.AttendanceService
	work       workupdate.WorkUpdateService
	learning   learning.LearningService
}

func setup(t *testing.T) services {
	t.Helper()
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	dir, err := directory.FromIdentities(fixtures.DemoIdentities())
	require.NoError(t, err)
	now := clock.Fixed(testNow)

	att := attendancesvc.NewAttendanceService(snapshot.NewAttendanceRepository(store), nopNotifier{}, now)
	work := workupdatesvc.NewWorkUpdateService(snapshot.NewWorkUpdateRepository(store), nopNotifier{}, now)
	lv := leavesvc.NewLeaveService(snapshot.NewLeaveRequestRepository(store), nopNotifier{}, now)
	meet := meetingsvc.NewMeetingService(snapshot.NewMeetingRepository(store), now)
	learn := learningsvc.NewLearningService(snapshot.NewLearningRepository(store), nopNotifier{}, now)
	apt := appointmentsvc.NewAppointmentService(snapshot.NewAppointmentRepository(store), dir, nopNotifier{}, now)

	return services{
		dashboard:  NewDashboardService(att, work, lv, meet, learn, apt, now),
		attendance: att,
		work:       work,
		learning:   learn,
	}
}

func as(i int) context.Context {
	return user.WithIdentity(context.Background(), fixtures.DemoIdentities()[i])
}

func TestGetDashboardStats(t *testing.T) {
	s := setup(t)
	ravi := as(0)

	stats, err := s.dashboard.GetDashboardStats(ravi)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{PendingLeaves: 1, UpcomingMeetings: 2}, stats)

	_, err = s.attendance.MarkAttendance(ravi, attendance.MarkAttendanceRequest{})
	require.NoError(t, err)
	_, err = s.work.SubmitWorkUpdate(ravi, workupdate.SubmitWorkUpdateRequest{YesterdayWork: "a", TodayPlan: "b"})
	require.NoError(t, err)
	_, err = s.learning.SubmitLearning(ravi, learning.SubmitLearningRequest{Topic: "SEO", LearningType: learning.TypeVideo, Confidence: 4})
	require.NoError(t, err)

	stats, err = s.dashboard.GetDashboardStats(ravi)
	require.NoError(t, err)
	assert.True(t, stats.AttendanceMarked)
	assert.True(t, stats.UpdateSubmitted)
	assert.Equal(t, 2, stats.LearningStreak)
}

func TestGetOverview(t *testing.T) {
	s := setup(t)

	emp, err := s.dashboard.GetOverview(as(0))
	require.NoError(t, err)
	assert.Equal(t, "Good afternoon", emp.Greeting)
	assert.Equal(t, "Employee", emp.Profile.RoleLabel)
	assert.Nil(t, emp.TodayAttendance)
	assert.Nil(t, emp.TodayUpdate)
	assert.Len(t, emp.NextMeetings, 2)
	assert.Zero(t, emp.PendingApprovals)

	lead, err := s.dashboard.GetOverview(as(1))
	require.NoError(t, err)
	assert.Equal(t, 1, lead.PendingApprovals)
	assert.Equal(t, 1, lead.PendingAppointments)
}

func TestGetDashboardStats_Unauthenticated(t *testing.T) {
	s := setup(t)
	_, err := s.dashboard.GetDashboardStats(context.Background())
	assert.ErrorIs(t, err, user.ErrNotAuthenticated)
}
