package directory

import (
	"context"
	"testing"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIdentities_Lookup(t *testing.T) {
	ctx := context.Background()
	dir, err := FromIdentities(fixtures.DemoIdentities())
	require.NoError(t, err)

	e, err := dir.FindByEmail(ctx, "  PRIYA@grofast.com ")
	require.NoError(t, err)
	assert.Equal(t, "tl-001", e.Identity.ID)
	assert.Empty(t, e.PasswordHash)

	e, err = dir.FindByID(ctx, "md-001")
	require.NoError(t, err)
	assert.Equal(t, "Vikram Raghunathan", e.Identity.Name)

	_, err = dir.FindByEmail(ctx, "nobody@grofast.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	all, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestParseYAML(t *testing.T) {
	raw := []byte(`
users:
  - id: emp-100
    name: Meera Nair
    email: meera@grofast.com
    phone: "+91 90000 00001"
    role: employee
    team: Development
    team_id: team-003
    department: Tech
    password_hash: "$2a$10$abcdefghijklmnopqrstuu"
`)
	dir, err := ParseYAML(raw)
	require.NoError(t, err)

	e, err := dir.FindByEmail(context.Background(), "meera@grofast.com")
	require.NoError(t, err)
	assert.Equal(t, "team-003", e.Identity.TeamID)
	assert.Equal(t, user.RoleEmployee, e.Identity.Role)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuu", e.PasswordHash)
}

func TestParseYAML_Invalid(t *testing.T) {
	tests := map[string]string{
		"not yaml":        "users: [",
		"unknown role":    "users:\n  - {id: x-1, email: x@grofast.com, role: intern}",
		"missing email":   "users:\n  - {id: x-1, role: employee}",
		"duplicate email": "users:\n  - {id: a, email: a@grofast.com, role: employee}\n  - {id: b, email: A@grofast.com, role: employee}",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(raw))
			assert.ErrorIs(t, err, user.ErrInvalidDirectory)
		})
	}
}
