package leave

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	"github.com/grofast/portal-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)

// recordingNotifier records the endpoints notified.
type recordingNotifier struct {
	endpoints []webhook.Endpoint
}

func (r *recordingNotifier) Notify(ctx context.Context, endpoint webhook.Endpoint, payload any) {
	r.endpoints = append(r.endpoints, endpoint)
}

func (r *recordingNotifier) Send(ctx context.Context, endpoint webhook.Endpoint, payload any) webhook.Result {
	return webhook.Result{Success: true}
}

func setup(t *testing.T) (leave.LeaveService, *recordingNotifier) {
	t.Helper()
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	n := &recordingNotifier{}
	return NewLeaveService(snapshot.NewLeaveRequestRepository(store), n, clock.Fixed(testNow)), n
}

func as(i int) context.Context {
	return user.WithIdentity(context.Background(), fixtures.DemoIdentities()[i])
}

func TestLeaveApprovalScenario(t *testing.T) {
	svc, n := setup(t)
	ravi, priya := as(0), as(1)

	created, err := svc.SubmitLeaveRequest(ravi, leave.SubmitLeaveRequest{
		LeaveType: leave.LeaveTypeSick,
		FromDate:  "2026-01-10",
		ToDate:    "2026-01-12",
		Reason:    "Fever",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "Ravi Kumar", created.EmployeeName)
	assert.Equal(t, "Digital Marketing", created.Team)
	assert.True(t, created.CreatedAt.Equal(testNow))

	pending, err := svc.PendingApprovals(priya)
	require.NoError(t, err)
	assert.Len(t, pending, 2, "seeded and new request")

	approver := "Priya Sharma"
	updated, err := svc.UpdateLeaveStatus(priya, created.ID, leave.StatusApproved, &approver)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Priya Sharma", *updated.ApprovedBy)
	assert.Equal(t, created.EmployeeID, updated.EmployeeID)
	assert.Equal(t, created.FromDate, updated.FromDate)
	assert.Equal(t, created.ToDate, updated.ToDate)

	// A failing notifier never blocks the write.
	mine, err := svc.ListMine(ravi, leave.StatusApproved)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
	assert.Equal(t, []webhook.Endpoint{webhook.EndpointLeaveRequest, webhook.EndpointLeaveStatusUpdate}, n.endpoints)
}

// downSender stands in for an automation endpoint that is down. Deliveries
// wait for release and then fail.
type downSender struct {
	release chan struct{}
}

func (s *downSender) Deliver(ctx context.Context, d webhook.Delivery) (int, error) {
	<-s.release
	return http.StatusBadGateway, errors.New("automation endpoint down")
}

func TestSubmitLeaveRequest_FailingWebhookDoesNotBlockWrite(t *testing.T) {
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	sender := &downSender{release: make(chan struct{})}
	dispatcher := notification.NewDispatcher(sender, notification.Config{WorkerCount: 1, MaxAttempts: 3})
	svc := NewLeaveService(snapshot.NewLeaveRequestRepository(store), dispatcher, clock.Fixed(testNow))
	ravi := as(0)

	created, err := svc.SubmitLeaveRequest(ravi, leave.SubmitLeaveRequest{
		LeaveType: leave.LeaveTypeCasual,
		FromDate:  "2026-01-20",
		ToDate:    "2026-01-20",
		Reason:    "Family event",
	})
	require.NoError(t, err)

	mine, err := svc.ListMine(ravi, leave.StatusPending)
	require.NoError(t, err)
	ids := make([]string, 0, len(mine))
	for _, l := range mine {
		ids = append(ids, l.ID)
	}
	assert.Contains(t, ids, created.ID)

	close(sender.release)
	assert.Eventually(t, func() bool { return dispatcher.Pending() == 1 }, time.Second, 5*time.Millisecond)
	dispatcher.Close()
}

func TestUpdateLeaveStatus_NoTransitionChecks(t *testing.T) {
	svc, _ := setup(t)
	ctx := as(0)

	_, err := svc.UpdateLeaveStatus(ctx, "leave-001", leave.StatusApproved, nil)
	require.NoError(t, err)
	again, err := svc.UpdateLeaveStatus(ctx, "leave-001", leave.StatusApproved, nil)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, again.Status)

	_, err = svc.UpdateLeaveStatus(ctx, "leave-missing", leave.StatusRejected, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestSubmitLeaveRequest_Validation(t *testing.T) {
	svc, n := setup(t)
	_, err := svc.SubmitLeaveRequest(as(0), leave.SubmitLeaveRequest{
		LeaveType: leave.LeaveTypeCasual,
		FromDate:  "2026-01-12",
		ToDate:    "2026-01-10",
	})
	assert.Error(t, err)
	assert.Empty(t, n.endpoints)
}

func TestBalance(t *testing.T) {
	svc, _ := setup(t)
	ctx := as(0)
	_, err := svc.UpdateLeaveStatus(ctx, "leave-001", leave.StatusApproved, nil)
	require.NoError(t, err)

	balance, err := svc.Balance(ctx)
	require.NoError(t, err)
	require.Len(t, balance, len(leave.LeaveTypes))

	byType := map[leave.LeaveType]leave.BalanceEntry{}
	for _, b := range balance {
		byType[b.LeaveType] = b
	}
	assert.Equal(t, 1, byType[leave.LeaveTypeCasual].Used)
	assert.Equal(t, 12, *byType[leave.LeaveTypeCasual].Days)
	assert.Nil(t, byType[leave.LeaveTypeWFH].Days)
	assert.Equal(t, "Work From Home", byType[leave.LeaveTypeWFH].Label)
}
