package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)

type notifyCall struct {
	endpoint webhook.Endpoint
	payload  any
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

func (f *fakeNotifier) Notify(ctx context.Context, endpoint webhook.Endpoint, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifyCall{endpoint, payload})
}

func (f *fakeNotifier) Send(ctx context.Context, endpoint webhook.Endpoint, payload any) webhook.Result {
	return webhook.Result{Success: true}
}

func setup(t *testing.T) (attendance.AttendanceService, *fakeNotifier, context.Context) {
	t.Helper()
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	n := &fakeNotifier{}
	svc := NewAttendanceService(snapshot.NewAttendanceRepository(store), n, clock.Fixed(testNow))
	ctx := user.WithIdentity(context.Background(), fixtures.DemoIdentities()[0])
	return svc, n, ctx
}

func TestMarkAttendance_Defaults(t *testing.T) {
	svc, n, ctx := setup(t)

	before, err := svc.GetToday(ctx)
	require.NoError(t, err)
	assert.False(t, before.Marked, "seeded pending record does not count")

	addr := "MG Road, Bengaluru"
	lat, lon := 12.97, 77.59
	rec, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{Address: &addr, Latitude: &lat, Longitude: &lon})
	require.NoError(t, err)

	assert.Contains(t, rec.ID, "att-")
	assert.Equal(t, "2026-01-01", rec.Date)
	assert.Equal(t, "emp-001", rec.EmployeeID)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	require.NotNil(t, rec.CheckIn)
	assert.True(t, rec.CheckIn.Equal(testNow))
	assert.Nil(t, rec.CheckOut)

	require.Len(t, n.calls, 1)
	assert.Equal(t, webhook.EndpointAttendance, n.calls[0].endpoint)
	assert.Equal(t, rec, n.calls[0].payload)

	after, err := svc.GetToday(ctx)
	require.NoError(t, err)
	assert.True(t, after.Marked)
	assert.Len(t, after.Records, 2)
}

func TestMarkAttendance_OverridesWin(t *testing.T) {
	svc, _, ctx := setup(t)

	date := "2025-12-30"
	status := attendance.StatusLate
	rec, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{Date: &date, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-30", rec.Date)
	assert.Equal(t, attendance.StatusLate, rec.Status)
}

func TestMarkAttendance_Validation(t *testing.T) {
	svc, _, ctx := setup(t)
	lat := 12.0
	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{Latitude: &lat})
	assert.Error(t, err)

	_, err = svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{})
	assert.ErrorIs(t, err, user.ErrNotAuthenticated)
}

func TestCheckOut(t *testing.T) {
	svc, _, ctx := setup(t)

	rec, err := svc.CheckOut(ctx, "att-001")
	require.NoError(t, err)
	require.NotNil(t, rec.CheckOut)
	assert.True(t, rec.CheckOut.Equal(testNow))

	_, err = svc.CheckOut(ctx, "att-missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestListMine(t *testing.T) {
	svc, _, ctx := setup(t)
	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{})
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other := user.WithIdentity(context.Background(), fixtures.DemoIdentities()[1])
	theirs, err := svc.ListMine(other)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
