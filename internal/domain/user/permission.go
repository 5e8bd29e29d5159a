package user

type Capability string

const (
	CapViewOwnData        Capability = "view_own_data"
	CapMarkAttendance     Capability = "mark_attendance"
	CapSubmitLeave        Capability = "submit_leave"
	CapSubmitUpdate       Capability = "submit_update"
	CapSubmitLearning     Capability = "submit_learning"
	CapViewTeamData       Capability = "view_team_data"
	CapApproveTeamLeave   Capability = "approve_team_leave"
	CapManageTeam         Capability = "manage_team"
	CapViewAllTeams       Capability = "view_all_teams"
	CapApproveTLLeave     Capability = "approve_tl_leave"
	CapViewCompanyData    Capability = "view_company_data"
	CapApproveSeniorLeave Capability = "approve_senior_leave"
	CapManageAll          Capability = "manage_all"
)

var employeeCapabilities = []Capability{
	CapViewOwnData,
	CapMarkAttendance,
	CapSubmitLeave,
	CapSubmitUpdate,
	CapSubmitLearning,
}

var teamLeadCapabilities = append(append([]Capability{}, employeeCapabilities...),
	CapViewTeamData,
	CapApproveTeamLeave,
	CapManageTeam,
)

var seniorCapabilities = append(append([]Capability{}, teamLeadCapabilities...),
	CapViewAllTeams,
	CapApproveTLLeave,
)

var mdCapabilities = append(append([]Capability{}, seniorCapabilities...),
	CapViewCompanyData,
	CapApproveSeniorLeave,
	CapManageAll,
)

// RoleCapabilities is the static grant table. Admin is absent because it
// holds every capability.
var RoleCapabilities = map[Role][]Capability{
	RoleEmployee: employeeCapabilities,
	RoleTeamLead: teamLeadCapabilities,
	RoleSenior:   seniorCapabilities,
	RoleMD:       mdCapabilities,
}

// HasPermission reports whether identity's role grants capability. A nil
// identity holds nothing.
func HasPermission(identity *Identity, capability Capability) bool {
	if identity == nil {
		return false
	}
	if identity.Role == RoleAdmin {
		return true
	}
	for _, c := range RoleCapabilities[identity.Role] {
		if c == capability {
			return true
		}
	}
	return false
}

var roleLabels = map[Role]string{
	RoleEmployee: "Employee",
	RoleTeamLead: "Team Lead",
	RoleSenior:   "Senior",
	RoleMD:       "Managing Director",
	RoleAdmin:    "Administrator",
}

// RoleLabel returns the display label, or the raw code for unknown roles.
func RoleLabel(role Role) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return string(role)
}
