package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, now time.Time) meeting.MeetingService {
	t.Helper()
	seed := fixtures.Seed("2026-01-01")
	seed.Meetings = append(seed.Meetings, meeting.Meeting{
		ID: "meet-old", Title: "Retro", Type: meeting.TypeSenior, Date: "2025-12-20", Time: "09:00", Attendees: []string{"emp-001"},
	})
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", seed)
	require.NoError(t, err)
	return NewMeetingService(snapshot.NewMeetingRepository(store), clock.Fixed(now))
}

func TestUpcoming(t *testing.T) {
	svc := setup(t, time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))

	ravi := user.WithIdentity(context.Background(), fixtures.DemoIdentities()[0])
	got, err := svc.Upcoming(ravi)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "meet-001", got[0].ID)
	assert.Equal(t, "meet-002", got[1].ID)

	admin := user.WithIdentity(context.Background(), fixtures.DemoIdentities()[4])
	got, err = svc.Upcoming(admin)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSchedule(t *testing.T) {
	svc := setup(t, time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	ravi := user.WithIdentity(context.Background(), fixtures.DemoIdentities()[0])

	s, err := svc.Schedule(ravi)
	require.NoError(t, err)
	require.Len(t, s.Today, 1)
	assert.Equal(t, "Daily Standup", s.Today[0].TypeLabel)
	require.Len(t, s.Upcoming, 1)
	assert.Equal(t, "Weekly Review", s.Upcoming[0].TypeLabel)
	require.Len(t, s.Past, 1)
	assert.Equal(t, "Senior Review", s.Past[0].TypeLabel)
}
