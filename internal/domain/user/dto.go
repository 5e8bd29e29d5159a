package user

import (
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

// ProfileResponse is the identity plus its display label.
type ProfileResponse struct {
	Identity
	RoleLabel string `json:"roleLabel"`
}

func NewProfileResponse(identity Identity) ProfileResponse {
	return ProfileResponse{Identity: identity, RoleLabel: RoleLabel(identity.Role)}
}

// UpdateProfileRequest carries the fields a user may change on their own
// identity. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Team       *string `json:"team,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name cannot be empty")
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "invalid phone number")
	}
	if r.Avatar != nil && !validator.IsEmpty(*r.Avatar) && !validator.IsValidURL(*r.Avatar) {
		errs.Add("avatar", "avatar must be an http(s) URL")
	}

	return errs.Err()
}

// Apply merges the non-nil fields into identity.
func (r UpdateProfileRequest) Apply(identity Identity) Identity {
	if r.Name != nil {
		identity.Name = *r.Name
	}
	if r.Phone != nil {
		identity.Phone = *r.Phone
	}
	if r.Department != nil {
		identity.Department = *r.Department
	}
	if r.Team != nil {
		identity.Team = *r.Team
	}
	if r.Avatar != nil {
		avatar := *r.Avatar
		identity.Avatar = &avatar
	}
	return identity
}
