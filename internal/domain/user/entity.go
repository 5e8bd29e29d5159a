package user

type Role string

const (
	RoleEmployee Role = "employee"
	RoleTeamLead Role = "team_lead"
	RoleSenior   Role = "senior"
	RoleMD       Role = "md"
	RoleAdmin    Role = "admin"
)

// Roles lists every role in ascending authority.
var Roles = []Role{RoleEmployee, RoleTeamLead, RoleSenior, RoleMD, RoleAdmin}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

// Identity is the authenticated person. It is persisted as-is by the
// session store and embedded in tokens.
type Identity struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Email      string  `json:"email" yaml:"email"`
	Phone      string  `json:"phone" yaml:"phone"`
	Role       Role    `json:"role" yaml:"role"`
	Team       string  `json:"team" yaml:"team"`
	TeamID     string  `json:"teamId" yaml:"team_id"`
	Department string  `json:"department" yaml:"department"`
	Avatar     *string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// IsReviewer reports whether the identity may approve leave and review
// work updates.
func (i *Identity) IsReviewer() bool {
	if i == nil {
		return false
	}
	switch i.Role {
	case RoleTeamLead, RoleSenior, RoleMD, RoleAdmin:
		return true
	}
	return false
}

// IsAdministrative reports admin or md, the roles allowed into the admin panel.
func (i *Identity) IsAdministrative() bool {
	return i != nil && (i.Role == RoleAdmin || i.Role == RoleMD)
}

// CanManageTeams reports admin, md or senior.
func (i *Identity) CanManageTeams() bool {
	return i != nil && (i.Role == RoleAdmin || i.Role == RoleMD || i.Role == RoleSenior)
}
