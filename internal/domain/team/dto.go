package team

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

type CreateTeamRequest struct {
	Name       string   `json:"name"`
	Department string   `json:"department"`
	LeadID     string   `json:"leadId"`
	Members    []string `json:"members,omitempty"`
	CreatedAt  *string  `json:"createdAt,omitempty"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	errs.Required("department", r.Department)
	if r.CreatedAt != nil {
		if _, ok := validator.IsValidDate(*r.CreatedAt); !ok {
			errs.Add("createdAt", "createdAt must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

func (r CreateTeamRequest) Build(id string, now time.Time) Team {
	t := Team{
		ID:         id,
		Name:       r.Name,
		Department: r.Department,
		LeadID:     r.LeadID,
		Members:    []string{},
		CreatedAt:  now.Format(clock.DateLayout),
	}
	if r.Members != nil {
		t.Members = r.Members
	}
	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	}
	return t
}

// Member is a resolved team member.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"`
	IsLead    bool   `json:"isLead"`
}

type TeamResponse struct {
	Team
	LeadName       string   `json:"leadName,omitempty"`
	MemberDetails  []Member `json:"memberDetails"`
	CanManageTeams bool     `json:"canManageTeams"`
}
