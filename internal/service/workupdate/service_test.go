package workupdate

import (
	"context"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(ctx context.Context, endpoint webhook.Endpoint, payload any) { c.n++ }
func (c *countingNotifier) Send(ctx context.Context, endpoint webhook.Endpoint, payload any) webhook.Result {
	return webhook.Result{Success: true}
}

func setup(t *testing.T) (workupdate.WorkUpdateService, *countingNotifier) {
	t.Helper()
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	n := &countingNotifier{}
	return NewWorkUpdateService(snapshot.NewWorkUpdateRepository(store), n, clock.Fixed(testNow)), n
}

func as(i int) context.Context {
	return user.WithIdentity(context.Background(), fixtures.DemoIdentities()[i])
}

func TestSubmitAndReview(t *testing.T) {
	svc, n := setup(t)
	ravi, arun := as(0), as(2)

	today, err := svc.GetToday(ravi)
	require.NoError(t, err)
	assert.Nil(t, today)

	created, err := svc.SubmitWorkUpdate(ravi, workupdate.SubmitWorkUpdateRequest{
		YesterdayWork: "Drafted campaign copy",
		TodayPlan:     "Review creatives",
		TimeSpent:     "7 hours",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", created.Date)
	assert.Equal(t, workupdate.ReviewPending, created.ReviewStatus)
	assert.Equal(t, []string{}, created.Attachments)
	assert.Equal(t, 1, n.n)

	today, err = svc.GetToday(ravi)
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, created.ID, today.ID)

	queue, err := svc.PendingReviews(arun)
	require.NoError(t, err)
	assert.Len(t, queue, 2)

	comment := "Add metrics next time"
	reviewed, err := svc.ReviewWorkUpdate(arun, created.ID, workupdate.ReviewNeedsImprovement, &comment)
	require.NoError(t, err)
	assert.Equal(t, workupdate.ReviewNeedsImprovement, reviewed.ReviewStatus)
	assert.Equal(t, &comment, reviewed.SeniorComment)
	assert.Equal(t, created.YesterdayWork, reviewed.YesterdayWork)

	queue, err = svc.PendingReviews(arun)
	require.NoError(t, err)
	assert.Len(t, queue, 1)
}

func TestPendingReviews_NonReviewer(t *testing.T) {
	svc, _ := setup(t)
	queue, err := svc.PendingReviews(as(0))
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestReviewWorkUpdate_NotFound(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.ReviewWorkUpdate(as(1), "wu-missing", workupdate.ReviewApproved, nil)
	assert.ErrorIs(t, err, workupdate.ErrWorkUpdateNotFound)
}
