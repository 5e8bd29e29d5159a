package fixtures

import (
	"github.com/grofast/portal-backend-go/internal/domain/user"
)

// ==========================================
// DEMO DIRECTORY
// ==========================================

// DemoIdentities are the built-in accounts. Any password of at least four
// characters signs in as one of them.
func DemoIdentities() []user.Identity {
	return []user.Identity{
		{
			ID:         "emp-001",
			Name:       "Ravi Kumar",
			Email:      "ravi@grofast.com",
			Phone:      "+91 98765 43210",
			Role:       user.RoleEmployee,
			Team:       "Digital Marketing",
			TeamID:     "team-001",
			Department: "Marketing",
		},
		{
			ID:         "tl-001",
			Name:       "Priya Sharma",
			Email:      "priya@grofast.com",
			Phone:      "+91 98765 43211",
			Role:       user.RoleTeamLead,
			Team:       "Digital Marketing",
			TeamID:     "team-001",
			Department: "Marketing",
		},
		{
			ID:         "senior-001",
			Name:       "Arun Patel",
			Email:      "arun@grofast.com",
			Phone:      "+91 98765 43212",
			Role:       user.RoleSenior,
			Team:       "Operations",
			TeamID:     "team-002",
			Department: "Operations",
		},
		{
			ID:         "md-001",
			Name:       "Vikram Raghunathan",
			Email:      "vikram@grofast.com",
			Phone:      "+91 98765 43213",
			Role:       user.RoleMD,
			Team:       "Management",
			TeamID:     "team-000",
			Department: "Management",
		},
		{
			ID:         "admin-001",
			Name:       "Admin User",
			Email:      "admin@grofast.com",
			Phone:      "+91 98765 43214",
			Role:       user.RoleAdmin,
			Team:       "Administration",
			TeamID:     "team-000",
			Department: "Administration",
		},
	}
}
