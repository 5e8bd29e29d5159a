package team

import (
	"context"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/directory"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) team.TeamService {
	t.Helper()
	store, err := snapshot.Open(context.Background(), kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(testNow)))
	require.NoError(t, err)
	dir, err := directory.FromIdentities(fixtures.DemoIdentities())
	require.NoError(t, err)
	return NewTeamService(snapshot.NewTeamRepository(store), dir, clock.Fixed(testNow))
}

func as(i int) context.Context {
	return user.WithIdentity(context.Background(), fixtures.DemoIdentities()[i])
}

func TestCreateTeam(t *testing.T) {
	svc := setup(t)

	_, err := svc.CreateTeam(as(0), team.CreateTeamRequest{Name: "Growth", Department: "Marketing"})
	assert.ErrorIs(t, err, user.ErrAccessDenied)

	created, err := svc.CreateTeam(as(4), team.CreateTeamRequest{Name: "Growth", Department: "Marketing", LeadID: "tl-001"})
	require.NoError(t, err)
	assert.Contains(t, created.ID, "team-")
	assert.Equal(t, "2026-01-01", created.CreatedAt)
	assert.Equal(t, []string{}, created.Members)

	got, err := svc.GetTeam(as(4), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", got.LeadName)
	assert.True(t, got.CanManageTeams)

	_, err = svc.CreateTeam(as(4), team.CreateTeamRequest{Name: ""})
	assert.Error(t, err)
}

func TestListTeams_ResolvesMembers(t *testing.T) {
	svc := setup(t)

	teams, err := svc.ListTeams(as(0))
	require.NoError(t, err)
	require.Len(t, teams, 3)

	marketing := teams[0]
	assert.Equal(t, "Priya Sharma", marketing.LeadName)
	assert.False(t, marketing.CanManageTeams)
	require.Len(t, marketing.MemberDetails, 2)
	assert.Equal(t, "Employee", marketing.MemberDetails[0].RoleLabel)
	assert.True(t, marketing.MemberDetails[1].IsLead)

	dev := teams[2]
	assert.Empty(t, dev.LeadName, "tl-002 is not in the directory")
	assert.Empty(t, dev.MemberDetails)

	_, err = svc.GetTeam(as(0), "team-missing")
	assert.ErrorIs(t, err, team.ErrTeamNotFound)
}
