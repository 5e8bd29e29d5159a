package jwt

import (
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", time.Hour, 24*time.Hour)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()
	identity := user.Identity{ID: "tl-001", Email: "priya@grofast.com", Role: user.RoleTeamLead, TeamID: "team-001"}

	token, expiresAt, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "tl-001", claims["user_id"])
	assert.Equal(t, "team_lead", claims["role"])
	assert.Equal(t, "team-001", claims["team_id"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestRefreshToken_RoundTripAndRevoke(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("emp-001")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-001", userID)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestStreamToken_RejectsOtherTypes(t *testing.T) {
	svc := newTestService()

	access, _, err := svc.GenerateAccessToken(user.Identity{ID: "emp-001", Role: user.RoleEmployee})
	require.NoError(t, err)
	_, err = svc.ValidateStreamToken(access)
	assert.Error(t, err)

	stream, expiresIn, err := svc.GenerateStreamToken("emp-001")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateStreamToken(stream)
	require.NoError(t, err)
	assert.Equal(t, "emp-001", userID)
}
